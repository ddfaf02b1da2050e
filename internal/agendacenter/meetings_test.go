package agendacenter

import (
	"reflect"
	"testing"
)

func TestExtractMeetingIDs(t *testing.T) {
	tests := []struct {
		name string
		html string
		want []int
	}{
		{
			name: "duplicates collapse in first-seen order",
			html: `<html><body>
				<a href="/AgendaCenter/26/501">Agenda</a>
				<a href="/AgendaCenter/26/502">Agenda</a>
				<a href="/AgendaCenter/26/501">Minutes</a>
			</body></html>`,
			want: []int{501, 502},
		},
		{
			name: "absolute URLs with query strings match",
			html: `<a href="https://www.joplinmo.org/AgendaCenter/26/77?MOBILE=ON&year=2023">meeting</a>`,
			want: []int{77},
		},
		{
			name: "viewfile links are not meeting links",
			html: `<a href="/AgendaCenter/ViewFile/Agenda/_05012023-1">agenda</a>`,
			want: nil,
		},
		{
			name: "no links at all",
			html: `<html><body><p>Nothing scheduled.</p></body></html>`,
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractMeetingIDs(tt.html)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ExtractMeetingIDs() = %v, want %v", got, tt.want)
			}
		})
	}
}
