package omap

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/ordkit/pkg/keycmp"
)

// --- helpers ---

func abc(t *testing.T) *Map[string, int] {
	t.Helper()
	m := New[string, int]()
	require.NoError(t, m.Add("a", 1))
	require.NoError(t, m.Add("b", 2))
	require.NoError(t, m.Add("c", 3))
	return m
}

func requireConsistent[K comparable, V any](t *testing.T, m *Map[K, V]) {
	t.Helper()
	require.NoError(t, m.Check())
}

func requireKeys[V any](t *testing.T, m *Map[string, V], want ...string) {
	t.Helper()
	if diff := cmp.Diff(want, m.KeyList()); diff != "" {
		t.Fatalf("key order mismatch (-want +got):\n%s", diff)
	}
	requireConsistent(t, m)
}

// --- add ---

func TestAdd(t *testing.T) {
	m := New[string, int]()
	for i, k := range []string{"a", "b", "c"} {
		require.NoError(t, m.Add(k, i*10))
		require.Equal(t, i, m.IndexOf(k), "IndexOf(%q) after Add", k)

		v, err := m.Get(k)
		require.NoError(t, err)
		require.Equal(t, i*10, v)
	}
	require.Equal(t, 3, m.Len())
	requireKeys(t, m, "a", "b", "c")
}

func TestAdd_Duplicate(t *testing.T) {
	m := abc(t)

	err := m.Add("b", 99)
	require.ErrorIs(t, err, ErrDuplicateKey)
	require.Contains(t, err.Error(), "at position 1")

	require.Equal(t, 3, m.Len())
	v, _ := m.Get("b")
	require.Equal(t, 2, v, "duplicate Add overwrote the value")
	requireKeys(t, m, "a", "b", "c")
}

func TestAddEntry(t *testing.T) {
	m := New[int, string]()
	require.NoError(t, m.AddEntry(Entry[int, string]{Key: 101, Value: "101"}))
	require.ErrorIs(t, m.AddEntry(Entry[int, string]{Key: 101, Value: "x"}), ErrDuplicateKey)
	require.Equal(t, 1, m.Len())
}

// --- insert ---

func TestInsert_ShiftsLaterKeys(t *testing.T) {
	for p := 0; p <= 3; p++ {
		m := abc(t)
		before := map[string]int{"a": 0, "b": 1, "c": 2}

		require.NoError(t, m.Insert(p, "x", 9))

		for k, old := range before {
			want := old
			if old >= p {
				want = old + 1
			}
			require.Equal(t, want, m.IndexOf(k), "insert at %d: IndexOf(%q)", p, k)
		}
		v, err := m.ByIndex().Get(p)
		require.NoError(t, err)
		require.Equal(t, 9, v)
		require.Equal(t, p, m.IndexOf("x"))
		requireConsistent(t, m)
	}
}

func TestInsert_AtEndIsAdd(t *testing.T) {
	m := abc(t)
	require.NoError(t, m.Insert(3, "d", 4))
	requireKeys(t, m, "a", "b", "c", "d")
}

func TestInsert_IntoEmpty(t *testing.T) {
	m := New[string, int]()
	require.NoError(t, m.Insert(0, "only", 1))
	requireKeys(t, m, "only")
}

func TestInsert_Errors(t *testing.T) {
	m := abc(t)

	for _, p := range []int{-1, 4, 10} {
		err := m.Insert(p, "x", 9)
		require.ErrorIs(t, err, ErrIndexOutOfRange, "Insert(%d)", p)
	}
	require.ErrorIs(t, m.Insert(1, "c", 9), ErrDuplicateKey)

	// Range is reported before duplication.
	require.ErrorIs(t, m.Insert(7, "c", 9), ErrIndexOutOfRange)

	requireKeys(t, m, "a", "b", "c")
	require.False(t, m.ContainsKey("x"))
}

func TestInsert_ThenRemoveAt_RoundTrip(t *testing.T) {
	for p := 0; p <= 3; p++ {
		m := abc(t)
		before := m.Entries()

		require.NoError(t, m.Insert(p, "x", 9))
		require.NoError(t, m.RemoveAt(p))

		require.Equal(t, before, m.Entries(), "insert/remove at %d", p)
		require.False(t, m.ContainsKey("x"))
		require.Equal(t, 1, m.IndexOf("b"))
		requireConsistent(t, m)
	}
}

// --- keyed access ---

func TestGet_KeyNotFound(t *testing.T) {
	m := abc(t)
	_, err := m.Get("zz")
	require.ErrorIs(t, err, ErrKeyNotFound)
	require.Contains(t, err.Error(), "zz")
}

func TestSet_ReplacesInPlace(t *testing.T) {
	m := abc(t)
	require.NoError(t, m.Set("b", 20))

	require.Equal(t, 3, m.Len())
	require.Equal(t, 1, m.IndexOf("b"))
	v, _ := m.Get("b")
	require.Equal(t, 20, v)
	requireKeys(t, m, "a", "b", "c")
}

func TestSet_AppendsWhenAbsent(t *testing.T) {
	m := abc(t)
	require.NoError(t, m.Set("d", 4))

	require.Equal(t, 3, m.IndexOf("d"))
	requireKeys(t, m, "a", "b", "c", "d")
}

func TestSet_KeepsOriginalKeySpelling(t *testing.T) {
	m := NewWithComparer[string, int](keycmp.CaseInsensitive())
	require.NoError(t, m.Add("Path", 1))
	require.NoError(t, m.Set("PATH", 2))

	requireKeys(t, m, "Path")
	v, _ := m.Get("path")
	require.Equal(t, 2, v)
}

func TestSelfUnequalKeyRejected(t *testing.T) {
	nan := math.NaN()
	m := New[float64, string]()
	require.NoError(t, m.Add(1, "one"))
	require.NoError(t, m.Add(2, "two"))

	require.ErrorIs(t, m.Add(nan, "x"), ErrInvalidArgument)
	requireConsistent(t, m)

	require.ErrorIs(t, m.Insert(0, nan, "x"), ErrInvalidArgument)
	requireConsistent(t, m)

	require.ErrorIs(t, m.Set(nan, "x"), ErrInvalidArgument)
	requireConsistent(t, m)

	require.ErrorIs(t, m.AddEntry(Entry[float64, string]{Key: nan}), ErrInvalidArgument)
	require.Equal(t, []float64{1, 2}, m.KeyList())

	require.False(t, m.ContainsKey(nan))
	require.Equal(t, -1, m.IndexOf(nan))
	require.False(t, m.Remove(nan))

	// The index still renumbers correctly around the rejected keys.
	require.NoError(t, m.Insert(0, 0, "zero"))
	requireConsistent(t, m)
	require.NoError(t, m.RemoveAt(0))
	requireConsistent(t, m)
	require.Equal(t, 1, m.IndexOf(2))
}

func TestSelfUnequalCanonicalFormRejected(t *testing.T) {
	// A comparer that maps every key to NaN makes every key invalid.
	toNaN := keycmp.Func[float64](func(float64) float64 { return math.NaN() })
	m := NewWithComparer[float64, int](toNaN)

	require.ErrorIs(t, m.Add(1, 1), ErrInvalidArgument)
	require.ErrorIs(t, m.Set(1, 1), ErrInvalidArgument)
	require.Zero(t, m.Len())
	requireConsistent(t, m)
}

func TestTryGet(t *testing.T) {
	m := abc(t)

	v, ok := m.TryGet("c")
	require.True(t, ok)
	require.Equal(t, 3, v)

	v, ok = m.TryGet("nope")
	require.False(t, ok)
	require.Zero(t, v)
}

func TestContainsKeyAndIndexOf(t *testing.T) {
	m := abc(t)
	require.True(t, m.ContainsKey("a"))
	require.False(t, m.ContainsKey("A"))
	require.Equal(t, 2, m.IndexOf("c"))
	require.Equal(t, -1, m.IndexOf("z"))
}

func TestContainsValue(t *testing.T) {
	m := abc(t)
	require.True(t, m.ContainsValue(2))
	require.False(t, m.ContainsValue(42))

	m.Set("b", 42)
	require.True(t, m.ContainsValue(42))
	require.False(t, m.ContainsValue(2))
}

func TestContainsValue_DeepEqualDefault(t *testing.T) {
	m := New[string, []string]()
	require.NoError(t, m.Add("path", []string{"/bin", "/usr/bin"}))

	require.True(t, m.ContainsValue([]string{"/bin", "/usr/bin"}))
	require.False(t, m.ContainsValue([]string{"/bin"}))
}

func TestContainsValue_CustomEquality(t *testing.T) {
	m := NewWithOptions(Options[string, string]{
		ValueEqual: func(a, b string) bool { return len(a) == len(b) },
	})
	require.NoError(t, m.Add("k", "abc"))
	require.True(t, m.ContainsValue("xyz"))
	require.False(t, m.ContainsValue("xy"))
}

// --- remove ---

func TestRemove(t *testing.T) {
	m := New[string, int]()
	for i, k := range []string{"a", "b", "c", "d", "e"} {
		require.NoError(t, m.Add(k, i))
	}

	require.True(t, m.Remove("b"))
	require.Equal(t, 4, m.Len())
	require.Equal(t, 0, m.IndexOf("a"))
	require.Equal(t, 1, m.IndexOf("c"))
	require.Equal(t, 2, m.IndexOf("d"))
	require.Equal(t, 3, m.IndexOf("e"))
	requireKeys(t, m, "a", "c", "d", "e")

	require.False(t, m.Remove("b"))
	require.False(t, m.Remove("zzz"))
	require.Equal(t, 4, m.Len())
	requireKeys(t, m, "a", "c", "d", "e")
}

func TestRemoveAt(t *testing.T) {
	m := abc(t)
	require.NoError(t, m.RemoveAt(2))
	requireKeys(t, m, "a", "b")

	require.NoError(t, m.RemoveAt(0))
	requireKeys(t, m, "b")
	require.Equal(t, 0, m.IndexOf("b"))

	require.NoError(t, m.RemoveAt(0))
	require.Equal(t, 0, m.Len())
	requireConsistent(t, m)
}

func TestRemoveAt_OutOfRange(t *testing.T) {
	m := abc(t)
	for _, p := range []int{-1, 3, 50} {
		err := m.RemoveAt(p)
		require.ErrorIs(t, err, ErrIndexOutOfRange, "RemoveAt(%d)", p)
	}
	requireKeys(t, m, "a", "b", "c")
}

// Removing at a lower position and then at the shifted position of a later
// key matches removing those keys by name.
func TestRemoveAt_MatchesRemoveByKey(t *testing.T) {
	keys := []string{"a", "b", "c", "d", "e", "f"}
	byPos := New[string, int]()
	byKey := New[string, int]()
	for i, k := range keys {
		require.NoError(t, byPos.Add(k, i))
		require.NoError(t, byKey.Add(k, i))
	}

	// "b" is at 1; "e" is at 4 originally and at 3 after the first removal.
	require.NoError(t, byPos.RemoveAt(1))
	require.NoError(t, byPos.RemoveAt(3))

	require.True(t, byKey.Remove("b"))
	require.True(t, byKey.Remove("e"))

	require.Equal(t, byKey.Entries(), byPos.Entries())
	for _, k := range []string{"a", "c", "d", "f"} {
		require.Equal(t, byKey.IndexOf(k), byPos.IndexOf(k), "IndexOf(%q)", k)
	}
	requireConsistent(t, byPos)
}

// --- clear ---

func TestClear(t *testing.T) {
	m := abc(t)
	m.Clear()

	require.Equal(t, 0, m.Len())
	require.False(t, m.ContainsKey("a"))
	require.Equal(t, -1, m.IndexOf("b"))
	requireConsistent(t, m)

	require.NoError(t, m.Add("a", 1), "cleared map should accept old keys")
	requireKeys(t, m, "a")
}

// --- bulk ---

func TestAddRange(t *testing.T) {
	m := abc(t)
	src := New[string, int]()
	require.NoError(t, src.Add("d", 4))
	require.NoError(t, src.Add("e", 5))

	require.NoError(t, m.AddRange(src.All()))
	requireKeys(t, m, "a", "b", "c", "d", "e")
}

func TestAddRange_StopsAtFirstDuplicate(t *testing.T) {
	m := abc(t)
	pairs := []Entry[string, int]{
		{Key: "d", Value: 4},
		{Key: "e", Value: 5},
		{Key: "a", Value: 100},
		{Key: "f", Value: 6},
	}

	err := m.AddRange(func(yield func(string, int) bool) {
		for _, p := range pairs {
			if !yield(p.Key, p.Value) {
				return
			}
		}
	})
	require.ErrorIs(t, err, ErrDuplicateKey)

	// d and e were committed; f was never reached.
	requireKeys(t, m, "a", "b", "c", "d", "e")
	v, _ := m.Get("a")
	require.Equal(t, 1, v)
}

func TestAddRange_Nil(t *testing.T) {
	m := abc(t)
	require.ErrorIs(t, m.AddRange(nil), ErrInvalidArgument)
	require.Equal(t, 3, m.Len())
}

func TestMerge(t *testing.T) {
	m := abc(t)
	other := New[string, int]()
	require.NoError(t, other.Add("z", 26))
	require.NoError(t, other.Add("y", 25))

	require.NoError(t, m.Merge(other))
	requireKeys(t, m, "a", "b", "c", "z", "y")
	requireKeys(t, other, "z", "y")

	require.ErrorIs(t, m.Merge(nil), ErrInvalidArgument)
	require.ErrorIs(t, m.Merge(other), ErrDuplicateKey)
	require.Equal(t, 5, m.Len())
}

func TestMerge_Self(t *testing.T) {
	m := abc(t)
	require.ErrorIs(t, m.Merge(m), ErrDuplicateKey)
	requireKeys(t, m, "a", "b", "c")
}

// --- scenarios ---

func TestScenario_ThreePairs(t *testing.T) {
	m := abc(t)
	require.Equal(t, 1, m.IndexOf("b"))

	require.NoError(t, m.RemoveAt(0))
	require.Equal(t, 0, m.IndexOf("b"))
	require.Equal(t, 2, m.Len())

	require.NoError(t, m.Insert(0, "x", 9))
	v, err := m.ByIndex().Get(0)
	require.NoError(t, err)
	require.Equal(t, 9, v)
	require.Equal(t, 1, m.IndexOf("b"))
	requireKeys(t, m, "x", "b", "c")
}

func TestScenario_CaseInsensitive(t *testing.T) {
	m := NewWithComparer[string, int](keycmp.CaseInsensitive())
	require.NoError(t, m.Add("Abc", 1))
	require.True(t, m.ContainsKey("abc"))

	err := m.Add("abc", 2)
	require.ErrorIs(t, err, ErrDuplicateKey)
	require.True(t, errors.Is(err, ErrDuplicateKey))
	require.Equal(t, 1, m.Len())

	require.Equal(t, 0, m.IndexOf("ABC"))
	require.True(t, m.Remove("aBC"))
	require.Equal(t, 0, m.Len())
}

// --- misc ---

func TestZeroValueMap(t *testing.T) {
	var m Map[string, int]
	require.Equal(t, 0, m.Len())
	require.False(t, m.ContainsKey("a"))
	require.NoError(t, m.Add("a", 1))
	require.NoError(t, m.Insert(0, "b", 2))
	require.Equal(t, []string{"b", "a"}, m.KeyList())
	require.Equal(t, "ordinal", keycmp.Name(m.Comparer()))
	require.NoError(t, m.Check())
}

func TestComparer(t *testing.T) {
	require.Equal(t, "ordinal", keycmp.Name(New[string, int]().Comparer()))
	require.Equal(t, "nfc", keycmp.Name(NewWithComparer[string, int](keycmp.Normalized()).Comparer()))
}

func TestString(t *testing.T) {
	require.Equal(t, "omap.Map[a:1 b:2 c:3]", abc(t).String())
	require.Equal(t, "omap.Map[]", New[int, int]().String())
}
