package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustRecord(t *testing.T, name string, phones ...string) *Record {
	t.Helper()
	r, err := NewRecord(name)
	require.NoError(t, err)
	for _, p := range phones {
		require.NoError(t, r.AddPhone(p))
	}
	return r
}

func TestDirectoryAddAndFind(t *testing.T) {
	d := NewDirectory()
	john := mustRecord(t, "John", "1234567890")
	d.AddRecord(john)

	got, ok := d.Find("John")
	require.True(t, ok)
	assert.Same(t, john, got)

	_, ok = d.Find("john")
	assert.False(t, ok, "lookup is exact")

	_, ok = d.Find("Jane")
	assert.False(t, ok)
}

func TestDirectoryAddRecordOverwrites(t *testing.T) {
	d := NewDirectory()
	first := mustRecord(t, "John", "1234567890")
	second := mustRecord(t, "John", "5555555555")
	d.AddRecord(mustRecord(t, "Jane"))
	d.AddRecord(first)
	d.AddRecord(second)

	assert.Equal(t, 2, d.Len())
	got, ok := d.Find("John")
	require.True(t, ok)
	assert.Same(t, second, got)
	assert.Equal(t, []string{"Jane", "John"}, d.Names())
}

func TestDirectoryAddNilIgnored(t *testing.T) {
	d := NewDirectory()
	d.AddRecord(nil)
	assert.Equal(t, 0, d.Len())
}

func TestDirectoryDelete(t *testing.T) {
	d := NewDirectory()
	d.AddRecord(mustRecord(t, "Jane", "9876543210"))

	require.NoError(t, d.Delete("Jane"))
	_, ok := d.Find("Jane")
	assert.False(t, ok)
	assert.Equal(t, 0, d.Len())

	err := d.Delete("Jane")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDirectoryAllInsertionOrder(t *testing.T) {
	d := NewDirectory()
	for _, name := range []string{"John", "Jane", "Alice", "Bob"} {
		d.AddRecord(mustRecord(t, name))
	}
	require.NoError(t, d.Delete("Jane"))
	d.AddRecord(mustRecord(t, "Jane"))

	var names []string
	for name, r := range d.All() {
		assert.Equal(t, name, r.Name().String())
		names = append(names, name)
	}
	assert.Equal(t, []string{"John", "Alice", "Bob", "Jane"}, names)
}

func TestDirectoryAllStopsEarly(t *testing.T) {
	d := NewDirectory()
	for _, name := range []string{"A", "B", "C"} {
		d.AddRecord(mustRecord(t, name))
	}

	var seen []string
	for name := range d.All() {
		seen = append(seen, name)
		if name == "B" {
			break
		}
	}
	assert.Equal(t, []string{"A", "B"}, seen)
}

func TestDirectoryDeleteDuringIteration(t *testing.T) {
	d := NewDirectory()
	for _, name := range []string{"A", "B", "C"} {
		d.AddRecord(mustRecord(t, name))
	}

	var seen []string
	for name := range d.All() {
		seen = append(seen, name)
		if name == "A" {
			require.NoError(t, d.Delete("B"))
		}
	}
	assert.Equal(t, []string{"A", "C"}, seen)
}

func TestDirectoryScenario(t *testing.T) {
	d := NewDirectory()
	john := mustRecord(t, "John", "1234567890", "5555555555")
	jane := mustRecord(t, "Jane", "9876543210")
	d.AddRecord(john)
	d.AddRecord(jane)

	r, ok := d.Find("John")
	require.True(t, ok)
	require.NoError(t, r.EditPhone("1234567890", "1112223333"))
	assert.Equal(t, "Contact name: John, phones: 1112223333; 5555555555", r.String())

	p, ok := r.FindPhone("5555555555")
	require.True(t, ok)
	assert.Equal(t, "John: 5555555555", r.Name().String()+": "+p.String())

	require.NoError(t, d.Delete("Jane"))
	_, ok = d.Find("Jane")
	assert.False(t, ok)
}
