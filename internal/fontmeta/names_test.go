package fontmeta

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

func TestIsCJK(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"", false},
		{"Source Han Sans", false},
		{"思源黑体", true},
		{"Noto Sans 黑", true},
		{"こんにちは", false}, // kana only
		{"Ж", false},
	}

	for _, test := range tests {
		assert.Equal(t, test.expected, IsCJK(test.input), "IsCJK(%q)", test.input)
	}
}

func TestSelectCandidates(t *testing.T) {
	path := filepath.Join("fonts", "fallback.ttf")

	t.Run("prefers CJK names", func(t *testing.T) {
		records := []Record{
			{PlatformID: PlatformWindows, EncodingID: 1, LanguageID: 0x409, NameID: 4, Value: "Source Han Sans"},
			{PlatformID: PlatformWindows, EncodingID: 1, LanguageID: 0x804, NameID: 4, Value: "思源黑体"},
			{PlatformID: PlatformWindows, EncodingID: 1, LanguageID: 0x804, NameID: 1, Value: "思源黑体"},
		}
		names, cjk := SelectCandidates(records, path)
		assert.True(t, cjk)
		assert.Equal(t, []string{"思源黑体"}, names)
	})

	t.Run("falls back to other names", func(t *testing.T) {
		records := []Record{
			{PlatformID: PlatformWindows, EncodingID: 1, NameID: 1, Value: "Go"},
			{PlatformID: PlatformWindows, EncodingID: 1, NameID: 4, Value: "Go Regular"},
			{PlatformID: PlatformWindows, EncodingID: 1, NameID: 2, Value: ""},
		}
		names, cjk := SelectCandidates(records, path)
		assert.False(t, cjk)
		assert.Equal(t, []string{"Go", "Go Regular"}, names)
	})

	t.Run("ignores Macintosh records when Unicode ones exist", func(t *testing.T) {
		records := []Record{
			{PlatformID: PlatformMacintosh, NameID: 4, Value: "Mac Name"},
			{PlatformID: PlatformUnicode, NameID: 4, Value: "Unicode Name"},
		}
		names, _ := SelectCandidates(records, path)
		assert.Equal(t, []string{"Unicode Name"}, names)
	})

	t.Run("uses Macintosh records when nothing else exists", func(t *testing.T) {
		records := []Record{{PlatformID: PlatformMacintosh, NameID: 4, Value: "Mac Name"}}
		names, _ := SelectCandidates(records, path)
		assert.Equal(t, []string{"Mac Name"}, names)
	})

	t.Run("legacy Windows records do not join the Macintosh fallback", func(t *testing.T) {
		legacy, err := decodeValue(Record{PlatformID: PlatformWindows, EncodingID: 3}, []byte("STSong"))
		require.NoError(t, err)
		records := []Record{
			{PlatformID: PlatformMacintosh, NameID: 4, Value: "STSong"},
			{PlatformID: PlatformWindows, EncodingID: 3, LanguageID: 0x804, NameID: 4, Value: legacy},
			{PlatformID: PlatformWindows, EncodingID: 3, LanguageID: 0x804, NameID: 1, Value: "华文宋体"},
		}
		names, cjk := SelectCandidates(records, path)
		assert.False(t, cjk)
		assert.Equal(t, []string{"STSong"}, names)
	})

	t.Run("falls back to the file stem", func(t *testing.T) {
		names, cjk := SelectCandidates(nil, path)
		assert.False(t, cjk)
		assert.Equal(t, []string{"fallback"}, names)
	})
}

func TestParseRecords_SynthesizedTable(t *testing.T) {
	table := buildNameTable([]testRecord{
		{PlatformMacintosh, 0, 0, 1, "Mac Family"},
		{PlatformWindows, 1, 0x409, 4, "Demo Sans"},
		{PlatformWindows, 1, 0x804, 4, "演示黑体"},
		{PlatformWindows, 3, 0x804, 4, "skipped"}, // PRC legacy encoding
	})
	data := buildSFNT(map[string][]byte{"name": table, "head": make([]byte, 54)})

	got, err := nameTable(data, 0)
	require.NoError(t, err)
	assert.Equal(t, table, got)

	records, err := parseRecords(got)
	require.NoError(t, err)
	require.Len(t, records, 4)
	assert.Equal(t, "Mac Family", records[0].Value)
	assert.Equal(t, "演示黑体", records[2].Value)
	assert.False(t, records[3].IsUnicode())
	assert.Equal(t, "skipped", records[3].Value)

	names, cjk := SelectCandidates(records, "demo.ttf")
	assert.True(t, cjk)
	assert.Equal(t, []string{"演示黑体"}, names)
}

func TestDecodeValue(t *testing.T) {
	tests := []struct {
		name     string
		rec      Record
		raw      []byte
		expected string
	}{
		{"unicode", Record{PlatformID: PlatformUnicode, EncodingID: 3}, []byte{0, 'G', 0, 'o'}, "Go"},
		{"windows bmp", Record{PlatformID: PlatformWindows, EncodingID: 1}, []byte{0x5b, 0x8b, 0x4f, 0x53}, "宋体"},
		{"mac roman", Record{PlatformID: PlatformMacintosh}, []byte("Caf\x8e"), "Café"},
		{"prc ascii", Record{PlatformID: PlatformWindows, EncodingID: 3}, []byte("STSong"), "STSong"},
		{"prc padded", Record{PlatformID: PlatformWindows, EncodingID: 3}, []byte{0, 'S', 0, 'T', 0xcb, 0xce, 0xcc, 0xe5}, "ST宋体"},
		{"big5", Record{PlatformID: PlatformWindows, EncodingID: 4}, []byte{0xa7, 0xba, 0xc5, 0xe9}, "宋體"},
		{"trailing nul", Record{PlatformID: PlatformWindows, EncodingID: 1}, []byte{0, 'A', 0, 0}, "A"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := decodeValue(test.rec, test.raw)
			require.NoError(t, err)
			assert.Equal(t, test.expected, got)
		})
	}

	_, err := decodeValue(Record{PlatformID: PlatformWindows, EncodingID: 6}, []byte("x"))
	assert.ErrorIs(t, err, errUnsupportedEncoding)
	_, err = decodeValue(Record{PlatformID: PlatformMacintosh, EncodingID: 25}, []byte("x"))
	assert.ErrorIs(t, err, errUnsupportedEncoding)
}

func TestNameTable_Errors(t *testing.T) {
	_, err := nameTable(buildSFNT(map[string][]byte{"head": make([]byte, 54)}), 0)
	assert.ErrorIs(t, err, ErrNoNameTable)

	_, err = nameTable([]byte("short"), 0)
	assert.ErrorIs(t, err, ErrInvalidFont)

	_, err = parseRecords([]byte{0, 0, 0, 5, 0, 6})
	assert.ErrorIs(t, err, ErrInvalidFont)
}

func TestParseNames_SingleFont(t *testing.T) {
	names, err := ParseNames(goregular.TTF, "go.ttf")
	require.NoError(t, err)

	assert.False(t, names.IsCollection)
	assert.Equal(t, 1, names.FontCount)
	assert.False(t, names.CJK)
	assert.Contains(t, names.Candidates, "Go Regular")

	details := names.Details["Go Regular"]
	assert.True(t, details.Found)
	assert.Equal(t, "Go", details.Family)
	assert.Equal(t, "Regular", details.Style)
}

func TestParseNames_NameTableOnly(t *testing.T) {
	table := buildNameTable([]testRecord{
		{PlatformWindows, 1, 0x409, 1, "Variable Sans"},
		{PlatformWindows, 1, 0x409, 2, "Regular"},
	})
	data := buildSFNT(map[string][]byte{"name": table})

	names, err := ParseNames(data, "variable.otf")
	require.NoError(t, err)
	assert.Equal(t, []string{"Variable Sans", "Regular"}, names.Candidates)
	assert.Equal(t, "Regular", names.Details["Variable Sans"].Style)
}

func TestParseNames_InvalidData(t *testing.T) {
	_, err := ParseNames([]byte("definitely not a font file"), "broken.ttf")
	assert.Error(t, err)
}

func TestParseNames_Collection(t *testing.T) {
	data := buildCollection(goregular.TTF, gobold.TTF)
	require.True(t, IsCollection(data))

	names, err := ParseNames(data, "go.ttc")
	require.NoError(t, err)

	assert.True(t, names.IsCollection)
	assert.Equal(t, 2, names.FontCount)
	assert.Equal(t, []string{"Go Regular", "Go Bold"}, names.Candidates)
	assert.Equal(t, "Bold", names.Details["Go Bold"].Style)
}

func TestParseNames_CollectionWithBrokenMember(t *testing.T) {
	data := buildCollection(goregular.TTF, withNameOutOfBounds(gobold.TTF))

	names, err := ParseNames(data, "mixed.ttc")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidFont)
	assert.Contains(t, err.Error(), "font 1 in mixed.ttc")

	assert.True(t, names.IsCollection)
	assert.Equal(t, 2, names.FontCount)
	assert.Equal(t, []string{"Go Regular"}, names.Candidates)
}

func TestSubFontName(t *testing.T) {
	tests := []struct {
		name     string
		records  []Record
		expected string
		cjk      bool
	}{
		{"full name", []Record{{NameID: 1, Value: "Fam"}, {NameID: 4, Value: "Fam Bold"}}, "Fam Bold", false},
		{"family fallback", []Record{{NameID: 1, Value: "Fam"}, {NameID: 2, Value: "Bold"}}, "Fam", false},
		{"cjk full name", []Record{{NameID: 4, Value: "Fam Bold"}, {NameID: 4, Value: "宋体 粗"}}, "宋体 粗", true},
		{"nothing", []Record{{NameID: 2, Value: "Bold"}}, "", false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			name, cjk := subFontName(test.records)
			assert.Equal(t, test.expected, name)
			assert.Equal(t, test.cjk, cjk)
		})
	}
}

func TestReadNames_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "GoRegular.ttf")
	require.NoError(t, os.WriteFile(path, goregular.TTF, 0o644))

	names, err := ReadNames(path)
	require.NoError(t, err)
	assert.Contains(t, names.Candidates, "Go Regular")

	_, err = ReadNames(filepath.Join(dir, "missing.ttf"))
	assert.Error(t, err)
}

func TestReadDetails(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "GoRegular.ttf")
	require.NoError(t, os.WriteFile(path, goregular.TTF, 0o644))

	details, err := ReadDetails(path, "Go Regular")
	require.NoError(t, err)
	assert.True(t, details.Found)
	assert.Equal(t, "Go", details.Family)
	assert.Equal(t, "Regular", details.Style)
	assert.NotEmpty(t, details.Version)

	details, err = ReadDetails(path, "Unknown Name")
	require.NoError(t, err)
	assert.False(t, details.Found)
}

func TestParseDetails_Collection(t *testing.T) {
	data := buildCollection(goregular.TTF, gobold.TTF)

	details, err := ParseDetails(data, "Go Bold")
	require.NoError(t, err)
	assert.True(t, details.Found)
	assert.Equal(t, "Bold", details.Style)
}
