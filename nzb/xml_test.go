package nzb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripPrologue(t *testing.T) {
	doc := `<nzb xmlns="http://www.newzbin.com/DTD/2003/nzb">
    <file poster="Joe Bloggs &lt;bloggs@nowhere.example&gt;" date="1071674882" subject="Here's your file!  abc-mr2a.r01 (1/2)">
        <groups>
            <group>alt.binaries.newzbin</group>
        </groups>
        <segments>
            <segment bytes="102394" number="1">123456789abcdef@news.newzbin.com</segment>
        </segments>
    </file>
</nzb>`

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name: "declaration and doctype",
			input: `
        <?xml version="1.0" encoding="iso-8859-1" ?>
        <!DOCTYPE nzb PUBLIC "-//newzBin//DTD NZB 1.1//EN" "http://www.newzbin.com/DTD/nzb/nzb-1.1.dtd">
        ` + doc,
			want: doc,
		},
		{
			name:  "declaration only",
			input: `<?xml version="1.0"?>` + "\n" + doc,
			want:  doc,
		},
		{
			name:  "doctype only, case-insensitive",
			input: `<!doctype nzb SYSTEM "nzb.dtd">` + doc,
			want:  doc,
		},
		{
			name:  "no prologue is a no-op",
			input: doc,
			want:  doc,
		},
		{
			name:  "surrounding whitespace is trimmed",
			input: "\n\t  " + doc + "  \n",
			want:  doc,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripPrologue(tt.input))
		})
	}
}

func TestReadDocumentStripsPrologue(t *testing.T) {
	withPrologue := `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE nzb PUBLIC "-//newzBin//DTD NZB 1.1//EN" "http://www.newzbin.com/DTD/nzb/nzb-1.1.dtd">
<nzb><head><meta type="title">Your File!</meta></head></nzb>`

	parsed, err := readDocument(withPrologue)
	require.NoError(t, err)
	require.NotNil(t, parsed.Root())
	assert.Equal(t, "nzb", parsed.Root().Tag)
}

func TestReadDocumentRejectsEmptyInput(t *testing.T) {
	_, err := readDocument("")
	require.Error(t, err)
}
