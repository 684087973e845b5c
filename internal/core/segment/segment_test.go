package segment

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func newThai(t *testing.T) *ThaiSegmenter {
	t.Helper()
	lex, err := DefaultThaiLexicon()
	require.NoError(t, err)
	return NewThaiSegmenter(lex)
}

func TestThaiSegment(t *testing.T) {
	seg := newThai(t)

	tests := []struct {
		word string
		want []string
	}{
		{"การเรียน", []string{"การ", "เรียน"}},
		{"เรียนหนังสือ", []string{"เรียน", "หนังสือ"}},
		{"หนังสือเรียน", []string{"หนังสือ", "เรียน"}},
		{"เขียนโปรแกรม", []string{"เขียน", "โปรแกรม"}},
		{"ทดสอบ", []string{"ทดสอบ"}},
		{"สวัสดีครับ", []string{"สวัสดี", "ครับ"}},
		{"ตามใจ", []string{"ตาม", "ใจ"}},
		{"กาแฟ", []string{"กาแฟ"}},
		{"มากมาย", []string{"มากมาย"}},
		{"โรงเรียน", []string{"โรงเรียน"}},
		{"ฉันรักเธอ", []string{"ฉัน", "รัก", "เธอ"}},
		{"ไปเที่ยวทะเล", []string{"ไป", "เที่ยว", "ทะเล"}},
		{"ทำงานหนัก", []string{"ทำงาน", "หนัก"}},
		{"คอมพิวเตอร์เครื่องใหม่", []string{"คอมพิวเตอร์", "เครื่อง", "ใหม่"}},
		{"ภาษา ไทย", []string{"ภาษา", "ไทย"}},
		{"แมว!", []string{"แมว"}},
		{"เกม Go", []string{"เกม", "Go"}},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			assert.Equal(t, tt.want, seg.Segment(tt.word))
		})
	}
}

func TestThaiSegment_Empty(t *testing.T) {
	seg := newThai(t)
	assert.Empty(t, seg.Segment(""))
	assert.Empty(t, seg.Segment("   "))
	assert.Empty(t, seg.Segment("?!"))
}

func TestThaiSegment_UnknownClustersMerge(t *testing.T) {
	seg := NewThaiSegmenter(NewLexicon("แมว"))

	assert.Equal(t, []string{"กข", "แมว"}, seg.Segment("กขแมว"))
	assert.Equal(t, []string{"แมว", "xyz"}, seg.Segment("แมวxyz"))
}

func TestThaiSegment_NoLoneConsonant(t *testing.T) {
	seg := NewThaiSegmenter(NewLexicon("สวัสดี", "รับ", "ตา", "ใจ"))

	assert.Equal(t, []string{"สวัสดี", "ครับ"}, seg.Segment("สวัสดีครับ"))
	assert.Equal(t, []string{"ก"}, seg.Segment("ก"))

	for _, unit := range seg.Segment("ตามใจ") {
		assert.False(t, isBareConsonant(unit), "unit %q", unit)
	}
}

func TestThaiSegment_LexiconWordsStayWhole(t *testing.T) {
	lex, err := DefaultThaiLexicon()
	require.NoError(t, err)
	seg := NewThaiSegmenter(lex)

	for word := range lex.words {
		assert.Equal(t, []string{word}, seg.Segment(word))
	}
}

func TestClusters(t *testing.T) {
	tests := []struct {
		run  string
		want []string
	}{
		{"เรียน", []string{"เรี", "ย", "น"}},
		{"ครับ", []string{"ค", "รับ"}},
		{"กาแฟ", []string{"กา", "แฟ"}},
		{"สัตว์", []string{"สัตว์"}},
		{"น้ำ", []string{"น้ำ"}},
		{"ใหม่", []string{"ให", "ม่"}},
	}

	for _, tt := range tests {
		t.Run(tt.run, func(t *testing.T) {
			var got []string
			for _, c := range clusters(tt.run) {
				got = append(got, tt.run[c.start:c.end])
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestThaiSegment_PrefersFewerUnits(t *testing.T) {
	seg := NewThaiSegmenter(NewLexicon("ทด", "สอบ", "ทดสอบ"))
	assert.Equal(t, []string{"ทดสอบ"}, seg.Segment("ทดสอบ"))

	seg = NewThaiSegmenter(NewLexicon("ทด", "สอบ"))
	assert.Equal(t, []string{"ทด", "สอบ"}, seg.Segment("ทดสอบ"))
}

func TestThaiUnits_StopsEarly(t *testing.T) {
	seg := newThai(t)

	var got []string
	for unit := range seg.Units("หนังสือเรียน") {
		got = append(got, unit)
		break
	}
	assert.Equal(t, []string{"หนังสือ"}, got)
}

func TestWordSegment(t *testing.T) {
	seg := NewWordSegmenter()

	assert.Equal(t, []string{"Hello", "world"}, seg.Segment("Hello, world!"))
	assert.Equal(t, []string{"apple"}, seg.Segment("apple"))
	assert.Empty(t, seg.Segment(""))
}

func TestNew_SelectsByLanguage(t *testing.T) {
	seg, err := New(language.Thai)
	require.NoError(t, err)
	assert.IsType(t, &ThaiSegmenter{}, seg)

	seg, err = New(language.MustParse("th-TH"))
	require.NoError(t, err)
	assert.IsType(t, &ThaiSegmenter{}, seg)

	seg, err = New(language.English)
	require.NoError(t, err)
	assert.IsType(t, &WordSegmenter{}, seg)
}

func TestNew_DictionaryFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "extra.txt")
	require.NoError(t, os.WriteFile(path, []byte("# compounds\nการเรียน\n"), 0o644))

	seg, err := New(language.Thai, WithDictionaryFile(path))
	require.NoError(t, err)
	assert.Equal(t, []string{"การเรียน"}, seg.Segment("การเรียน"))
}

func TestNew_MissingDictionaryFile(t *testing.T) {
	_, err := New(language.Thai, WithDictionaryFile(filepath.Join(t.TempDir(), "missing.txt")))
	assert.Error(t, err)
}

func TestLexicon(t *testing.T) {
	lex := NewLexicon(" แมว ", "", "หนังสือ")

	assert.Equal(t, 2, lex.Len())
	assert.True(t, lex.Contains("แมว"))
	assert.False(t, lex.Contains(" แมว "))
	assert.Equal(t, 7, lex.MaxRunes())

	def, err := DefaultThaiLexicon()
	require.NoError(t, err)
	assert.True(t, def.Contains("เรียน"))
	assert.False(t, def.Contains("# Thai base lexicon for the dictionary segmenter."))
}

type countingSegmenter struct {
	calls int
	units []string
}

func (c *countingSegmenter) Segment(word string) []string {
	c.calls++
	return append([]string(nil), c.units...)
}

func TestCached(t *testing.T) {
	next := &countingSegmenter{units: []string{"การ", "เรียน"}}
	c, err := NewCached(next, 8)
	require.NoError(t, err)

	first := c.Segment("การเรียน")
	first[0] = "mutated"

	second := c.Segment("การเรียน")
	assert.Equal(t, []string{"การ", "เรียน"}, second)
	assert.Equal(t, 1, next.calls)
	assert.Equal(t, 1, c.Len())
}
