package subject

import "testing"

func TestExtractFilename(t *testing.T) {
	tests := []struct {
		name    string
		subject string
		want    string
		wantOK  bool
	}{
		{
			name:    "quoted filename",
			subject: `[1/1] - "Big Buck Bunny - S01E01.mkv" yEnc (1/2) 1478616`,
			want:    "Big Buck Bunny - S01E01.mkv",
			wantOK:  true,
		},
		{
			name:    "quoted filename with inner quotes collapses to outermost pair",
			subject: `[1/8] - "TenPuru - No One Can Live on Loneliness v05 {+ "Book of Earthly Desires" pamphlet} (2021) (Digital) (KG Manga).cbz" yEnc (1/230) 164676947`,
			want:    `TenPuru - No One Can Live on Loneliness v05 {+ "Book of Earthly Desires" pamphlet} (2021) (Digital) (KG Manga).cbz`,
			wantOK:  true,
		},
		{
			name:    "structured multipart form",
			subject: "[011/116] - [AC-FFF] Highschool DxD BorN - 02 [BD][1080p-Hi10p] FLAC][Dual-Audio][442E5446].mkv yEnc (1/2401) 1720916370",
			want:    "[AC-FFF] Highschool DxD BorN - 02 [BD][1080p-Hi10p] FLAC][Dual-Audio][442E5446].mkv",
			wantOK:  true,
		},
		{
			name:    "structured multipart form with parenthesised counter",
			subject: "[010/108] - [SubsPlease] Ijiranaide, Nagatoro-san - 02 (1080p) [6E8E8065].mkv yEnc (1/2014) 1443366873",
			want:    "[SubsPlease] Ijiranaide, Nagatoro-san - 02 (1080p) [6E8E8065].mkv",
			wantOK:  true,
		},
		{
			name:    "best-effort token scan",
			subject: "Here's your file!  abc-mr2a.r01 (1/2)",
			want:    "abc-mr2a.r01",
			wantOK:  true,
		},
		{
			name:    "no filename",
			subject: "totally unrelated chatter",
			want:    "",
			wantOK:  false,
		},
		{
			name:    "empty subject",
			subject: "",
			want:    "",
			wantOK:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractFilename(tt.subject)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("ExtractFilename(%q) = (%q, %v), want (%q, %v)", tt.subject, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestSplitExtension(t *testing.T) {
	tests := []struct {
		filename string
		wantStem string
		wantExt  string
	}{
		{"abc-mr2a.r01", "abc-mr2a", "r01"},
		{"index.bdmv", "index", "bdmv"},
		{"Big Buck Bunny - S01E01.mkv", "Big Buck Bunny - S01E01", "mkv"},
		{"[AC-FFF] Highschool DxD BorN - 02 [BD][1080p-Hi10p] FLAC][Dual-Audio][442E5446].mkv", "[AC-FFF] Highschool DxD BorN - 02 [BD][1080p-Hi10p] FLAC][Dual-Audio][442E5446]", "mkv"},
		// Numeric-only extensions are accepted.
		{"My.Download.2020", "My.Download", "2020"},
		// Non-alphanumeric suffix is not an extension.
		{"ONE.PIECE.S01E1109.1080p.NF.WEB-DL.AAC2.0.H.264-VARYG", "ONE.PIECE.S01E1109.1080p.NF.WEB-DL.AAC2.0.H.264-VARYG", ""},
		{"ONE.PIECE.S01E1109.1080p.NF.WEB-DL.AAC2.0.H.264-VARYG.mkv", "ONE.PIECE.S01E1109.1080p.NF.WEB-DL.AAC2.0.H.264-VARYG", "mkv"},
		// Longer than 8 characters is not an extension.
		{"archive.verylongext", "archive.verylongext", ""},
		{"no_extension", "no_extension", ""},
		{".mkv", "", "mkv"},
		{"", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			stem, ext := SplitExtension(tt.filename)
			if stem != tt.wantStem || ext != tt.wantExt {
				t.Errorf("SplitExtension(%q) = (%q, %q), want (%q, %q)", tt.filename, stem, ext, tt.wantStem, tt.wantExt)
			}
		})
	}
}

func TestIsObfuscated(t *testing.T) {
	tests := []struct {
		name string
		stem string
		want bool
	}{
		// Certainly obfuscated patterns.
		{
			name: "32 hex digits (MD5-like hash)",
			stem: "599c1c9e2bdfb5114044bf25152b7eaa",
			want: true,
		},
		{
			name: "40+ hex digits and dots",
			stem: "0675e29e9abfd2.f7d069dab0b853283cc1b069a25f82.6547",
			want: true,
		},
		{
			name: "30+ hex run with two bracket groups",
			stem: "[BlaBla] something 5937bc5e32146e.bef89a622e4a23f07b0d3757ad5e8a.a02b264e [More]",
			want: true,
		},
		{
			name: "abc.xyz prefix",
			stem: "abc.xyz.a4c567edbcbf27.BLA",
			want: true,
		},

		// Not obfuscated patterns.
		{
			name: "uppercase, lowercase and a separator",
			stem: "Great Distro",
			want: false,
		},
		{
			name: "three or more separators",
			stem: "this is a download",
			want: false,
		},
		{
			name: "letters, digits and a separator",
			stem: "Beast 2020",
			want: false,
		},
		{
			name: "digits-heavy release name",
			stem: "My.Download.2020",
			want: false,
		},
		{
			name: "capitalised word, mostly lowercase",
			stem: "Catullus",
			want: false,
		},
		{
			name: "typical release name",
			stem: "Movie.Name.2023.1080p",
			want: false,
		},
		{
			name: "typical TV show name",
			stem: "The.Big.Movie.S01E01",
			want: false,
		},

		// Default cases.
		{
			name: "lowercase word defaults to obfuscated",
			stem: "catullus",
			want: true,
		},
		{
			name: "empty stem defaults to obfuscated",
			stem: "",
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsObfuscated(tt.stem); got != tt.want {
				t.Errorf("IsObfuscated(%q) = %v, want %v", tt.stem, got, tt.want)
			}
		})
	}
}
