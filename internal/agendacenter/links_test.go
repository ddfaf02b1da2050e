package agendacenter

import (
	"reflect"
	"testing"

	"github.com/civicdocs/agendarchive/pkg/models"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name   string
		url    string
		want   models.DocType
		wantOK bool
	}{
		{
			name:   "direct pdf under agenda segment",
			url:    "https://www.joplinmo.org/files/agenda/council.pdf",
			want:   models.TypeAgenda,
			wantOK: true,
		},
		{
			name:   "direct pdf under minutes segment is case insensitive",
			url:    "https://www.joplinmo.org/files/Minutes/council.PDF",
			want:   models.TypeMinutes,
			wantOK: true,
		},
		{
			name:   "direct docx under packet segment",
			url:    "https://www.joplinmo.org/docs/packet/attachments.docx",
			want:   models.TypePacket,
			wantOK: true,
		},
		{
			name:   "direct zip with no recognized segment",
			url:    "https://www.joplinmo.org/docs/misc/exhibit.zip",
			want:   models.TypeOther,
			wantOK: true,
		},
		{
			name:   "extension branch outranks viewfile packet flag",
			url:    "https://www.joplinmo.org/AgendaCenter/ViewFile/Agenda/_05012023-1.pdf?packet=true",
			want:   models.TypeAgenda,
			wantOK: true,
		},
		{
			name:   "pdf inside viewfile packet path stays in extension branch",
			url:    "https://www.joplinmo.org/AgendaCenter/ViewFile/Packet/_05012023-1.pdf",
			want:   models.TypePacket,
			wantOK: true,
		},
		{
			name:   "viewfile agenda without flag",
			url:    "https://www.joplinmo.org/AgendaCenter/ViewFile/Agenda/_05012023-26",
			want:   models.TypeAgenda,
			wantOK: true,
		},
		{
			name:   "viewfile agenda with packet flag",
			url:    "https://www.joplinmo.org/AgendaCenter/ViewFile/Agenda/_05012023-26?packet=true",
			want:   models.TypePacket,
			wantOK: true,
		},
		{
			name:   "viewfile minutes",
			url:    "https://www.joplinmo.org/AgendaCenter/ViewFile/Minutes/_05012023-26",
			want:   models.TypeMinutes,
			wantOK: true,
		},
		{
			name:   "viewfile packet endpoint",
			url:    "https://www.joplinmo.org/AgendaCenter/ViewFile/Packet/501?packet=true",
			want:   models.TypePacket,
			wantOK: true,
		},
		{
			name:   "ordinary page link is not a document",
			url:    "https://www.joplinmo.org/AgendaCenter/26/501?MOBILE=ON",
			want:   "",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Classify(tt.url)
			if ok != tt.wantOK {
				t.Fatalf("Classify(%q) ok = %v, want %v", tt.url, ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("Classify(%q) = %q, want %q", tt.url, got, tt.want)
			}
		})
	}
}

func TestAbsoluteURL(t *testing.T) {
	const base = "https://www.joplinmo.org"

	tests := []struct {
		href string
		want string
	}{
		{"https://elsewhere.example/doc.pdf", "https://elsewhere.example/doc.pdf"},
		{"/AgendaCenter/ViewFile/Agenda/_05012023-1", base + "/AgendaCenter/ViewFile/Agenda/_05012023-1"},
		{"AgendaCenter/ViewFile/Agenda/_05012023-1", base + "/AgendaCenter/ViewFile/Agenda/_05012023-1"},
	}

	for _, tt := range tests {
		if got := AbsoluteURL(base, tt.href); got != tt.want {
			t.Errorf("AbsoluteURL(%q) = %q, want %q", tt.href, got, tt.want)
		}
	}
}

func TestExtractFileLinks(t *testing.T) {
	const base = "https://www.joplinmo.org"

	html := `<html><body>
		<a href="/AgendaCenter/ViewFile/Agenda/_05012023-26">Agenda</a>
		<a href="/AgendaCenter/ViewFile/Agenda/_05012023-26?packet=true">Packet</a>
		<a href="/AgendaCenter/ViewFile/Minutes/_05012023-26">Minutes</a>
		<a href="/AgendaCenter/ViewFile/Agenda/_05012023-26">Agenda again</a>
		<a href="/AgendaCenter/26/502">Next meeting</a>
		<a href="https://www.joplinmo.org/docs/exhibit.pdf">Exhibit</a>
	</body></html>`

	want := []models.FileLink{
		{URL: base + "/AgendaCenter/ViewFile/Agenda/_05012023-26", Type: models.TypeAgenda},
		{URL: base + "/AgendaCenter/ViewFile/Agenda/_05012023-26?packet=true", Type: models.TypePacket},
		{URL: base + "/AgendaCenter/ViewFile/Minutes/_05012023-26", Type: models.TypeMinutes},
		{URL: base + "/docs/exhibit.pdf", Type: models.TypeOther},
	}

	got := ExtractFileLinks(html, base)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ExtractFileLinks() = %v, want %v", got, want)
	}
}

func TestExtractFileLinks_NoDocuments(t *testing.T) {
	html := `<html><body><a href="/AgendaCenter/26/501">Meeting</a></body></html>`
	if got := ExtractFileLinks(html, "https://www.joplinmo.org"); got != nil {
		t.Errorf("ExtractFileLinks() = %v, want nil", got)
	}
}
