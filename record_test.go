// FILE: lixenwraith/ini/record_test.go
package ini

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRecords() []Record {
	return []Record{
		{Group: "[A]", Key: "x", Value: "1"},
		{Group: "[A]", Key: "y", Value: "2"},
		{Group: "[B]", Key: "z", Value: "3"},
	}
}

// TestStoreBasics tests lookup and mutation of the ordered store
func TestStoreBasics(t *testing.T) {
	t.Run("IndexExactMatch", func(t *testing.T) {
		s := NewStore(sampleRecords()...)
		assert.Equal(t, 3, s.Len())
		assert.Equal(t, 1, s.Index("[A]", "y"))
		assert.Equal(t, 2, s.Index("[B]", "z"))
		assert.Equal(t, NotFound, s.Index("A", "y"), "stored groups keep their brackets")
		assert.Equal(t, NotFound, s.Index("[A]", " y"), "no trimming on lookup")
		assert.Equal(t, NotFound, s.Index("[a]", "y"), "store itself is case-sensitive")
	})

	t.Run("IndexReturnsFirstDuplicate", func(t *testing.T) {
		s := NewStore(
			Record{Group: "[A]", Key: "x", Value: "first"},
			Record{Group: "[A]", Key: "x", Value: "second"},
		)
		require.Equal(t, 0, s.Index("[A]", "x"))
		assert.Equal(t, "first", s.At(0).Value)
	})

	t.Run("AppendSetRemove", func(t *testing.T) {
		s := NewStore()
		s.Append(Record{Group: "[A]", Key: "x", Value: "1"})
		s.Append(Record{Group: "[A]", Key: "y", Value: "2"})
		s.SetValue(0, "10")
		assert.Equal(t, "10", s.At(0).Value)

		s.RemoveAt(0)
		assert.Equal(t, []Record{{Group: "[A]", Key: "y", Value: "2"}}, s.Records())

		s.InsertAt(0, Record{Key: "top", Value: "t"})
		s.InsertAt(s.Len(), Record{Group: "[B]", Key: "z", Value: "3"})
		assert.Equal(t, []Record{
			{Group: "", Key: "top", Value: "t"},
			{Group: "[A]", Key: "y", Value: "2"},
			{Group: "[B]", Key: "z", Value: "3"},
		}, s.Records())
		assert.Equal(t, 1, s.headerlessEnd())
		assert.Equal(t, 0, NewStore(sampleRecords()...).headerlessEnd())
		assert.Equal(t, 0, NewStore().headerlessEnd())
	})

	t.Run("RecordsIsACopy", func(t *testing.T) {
		s := NewStore(sampleRecords()...)
		records := s.Records()
		records[0].Value = "changed"
		assert.Equal(t, "1", s.At(0).Value)
	})

	t.Run("CloneAndEqual", func(t *testing.T) {
		s := NewStore(sampleRecords()...)
		c := s.Clone()
		assert.True(t, s.Equal(c))

		c.SetValue(0, "changed")
		assert.False(t, s.Equal(c))
		assert.False(t, s.Equal(nil))
	})
}

// TestStoreGroups tests group listing and contiguity handling
func TestStoreGroups(t *testing.T) {
	interleaved := []Record{
		{Group: "[A]", Key: "x", Value: "1"},
		{Group: "[B]", Key: "y", Value: "2"},
		{Group: "[A]", Key: "z", Value: "3"},
		{Group: "[C]", Key: "w", Value: "4"},
		{Group: "[B]", Key: "v", Value: "5"},
	}

	t.Run("GroupsInFirstAppearanceOrder", func(t *testing.T) {
		s := NewStore(interleaved...)
		assert.Equal(t, []string{"[A]", "[B]", "[C]"}, s.Groups())
		assert.Equal(t, []Record{
			{Group: "[B]", Key: "y", Value: "2"},
			{Group: "[B]", Key: "v", Value: "5"},
		}, s.Group("[B]"))
		assert.Empty(t, s.Group("[Missing]"))
	})

	t.Run("Contiguous", func(t *testing.T) {
		assert.True(t, NewStore().Contiguous())
		assert.True(t, NewStore(sampleRecords()...).Contiguous())
		assert.False(t, NewStore(interleaved...).Contiguous())
	})

	t.Run("CoalesceIsStable", func(t *testing.T) {
		s := NewStore(interleaved...)
		s.Coalesce()

		assert.True(t, s.Contiguous())
		assert.Equal(t, []Record{
			{Group: "[A]", Key: "x", Value: "1"},
			{Group: "[A]", Key: "z", Value: "3"},
			{Group: "[B]", Key: "y", Value: "2"},
			{Group: "[B]", Key: "v", Value: "5"},
			{Group: "[C]", Key: "w", Value: "4"},
		}, s.Records())
	})

	t.Run("CoalesceLeavesContiguousStoreAlone", func(t *testing.T) {
		s := NewStore(sampleRecords()...)
		s.Coalesce()
		assert.Equal(t, sampleRecords(), s.Records())
	})
}
