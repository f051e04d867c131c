package header

import "testing"

func TestFileType_LegalAndKnown(t *testing.T) {
	testCases := []struct {
		name      string
		fileType  FileType
		wantLegal bool
		wantKnown bool
	}{
		{name: "unknown sentinel", fileType: Unknown, wantLegal: false, wantKnown: false},
		{name: "carts", fileType: Carts, wantLegal: true, wantKnown: true},
		{name: "timeline is last known code", fileType: Timeline, wantLegal: true, wantKnown: true},
		{name: "in range but unassigned", fileType: 499, wantLegal: true, wantKnown: false},
		{name: "gap between units and listener units", fileType: 201, wantLegal: true, wantKnown: false},
		{name: "above range", fileType: 501, wantLegal: false, wantKnown: false},
		{name: "negative", fileType: -7, wantLegal: false, wantKnown: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.fileType.Legal(); got != tc.wantLegal {
				t.Errorf("Legal() = %t, want %t", got, tc.wantLegal)
			}
			if got := tc.fileType.Known(); got != tc.wantKnown {
				t.Errorf("Known() = %t, want %t", got, tc.wantKnown)
			}
		})
	}
}

func TestFileType_String(t *testing.T) {
	if got := Timeline.String(); got != "timeline" {
		t.Errorf("Timeline.String() = %q, want %q", got, "timeline")
	}
	if got := FileType(499).String(); got != "type(499)" {
		t.Errorf("FileType(499).String() = %q, want %q", got, "type(499)")
	}
}

func TestParseType(t *testing.T) {
	testCases := []struct {
		name    string
		input   string
		want    FileType
		wantErr bool
	}{
		{name: "by name", input: "timeline", want: Timeline},
		{name: "mixed case", input: "Units", want: Units},
		{name: "padded", input: "  carts ", want: Carts},
		{name: "by code", input: "500", want: Timeline},
		{name: "unassigned code parses", input: "499", want: 499},
		{name: "garbage", input: "waveform", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseType(tc.input)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("ParseType(%q) succeeded with %d, want error", tc.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseType(%q) failed: %v", tc.input, err)
			}
			if got != tc.want {
				t.Errorf("ParseType(%q) = %d, want %d", tc.input, got, tc.want)
			}
		})
	}
}
