package proof

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"sort"
	"sync"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/require"

	"github.com/coniks-sys/trieproof-go/utils/maybe"
)

// testNode is a string-hashed node over a rune alphabet.
type testNode struct {
	branch map[rune]string
	value  maybe.Maybe[string]
	hash   string
}

func newTestNode(branch map[rune]string, value maybe.Maybe[string]) *testNode {
	syms := make([]rune, 0, len(branch))
	for sym := range branch {
		syms = append(syms, sym)
	}
	sort.Slice(syms, func(i, j int) bool { return syms[i] < syms[j] })
	h := sha256.New()
	for _, sym := range syms {
		fmt.Fprintf(h, "%d=%s;", sym, branch[sym])
	}
	if value.HasValue() {
		fmt.Fprintf(h, "v%d:%s", len(value.Value()), value.Value())
	}
	return &testNode{
		branch: branch,
		value:  value,
		hash:   hex.EncodeToString(h.Sum(nil)),
	}
}

func (n *testNode) Hash() string               { return n.hash }
func (n *testNode) Value() maybe.Maybe[string] { return n.value }

func (n *testNode) Child(sym rune) (string, bool) {
	h, ok := n.branch[sym]
	return h, ok
}

type testTrie struct {
	root    *testNode
	nodes   map[string]*testNode
	resolve func(h string) (Node[string, rune, string], error)
}

func (t *testTrie) Root() Node[string, rune, string] {
	if t.root == nil {
		return nil
	}
	return t.root
}

func (t *testTrie) Resolve(h string) (Node[string, rune, string], error) {
	if t.resolve != nil {
		return t.resolve(h)
	}
	n, ok := t.nodes[h]
	if !ok {
		return nil, ErrNodeNotFound
	}
	return n, nil
}

// newTestTrie builds the trie holding exactly pairs. Nodes on the path
// to a key that store no value of their own have Nothing as value.
func newTestTrie(pairs map[string]string) *testTrie {
	t := &testTrie{nodes: make(map[string]*testNode)}
	t.root = t.build(pairs)
	return t
}

func (t *testTrie) build(pairs map[string]string) *testNode {
	value := maybe.Nothing[string]()
	groups := make(map[rune]map[string]string)
	for k, v := range pairs {
		if k == "" {
			value = maybe.Some(v)
			continue
		}
		sym, size := utf8.DecodeRuneInString(k)
		if groups[sym] == nil {
			groups[sym] = make(map[string]string)
		}
		groups[sym][k[size:]] = v
	}
	branch := make(map[rune]string)
	for sym, sub := range groups {
		branch[sym] = t.build(sub).hash
	}
	n := newTestNode(branch, value)
	t.nodes[n.hash] = n
	return n
}

func generate(t *testTrie, key string) (*Store[string, rune, string], error) {
	return Generate[string, rune, string](t, []rune(key))
}

func verify(root, key string, ps Getter[string, rune, string]) (bool, maybe.Maybe[string]) {
	return Verify[string, rune, string](root, []rune(key), ps)
}

// copyStore returns the nodes of ps as a mutable map.
func copyStore(ps *Store[string, rune, string]) MapGetter[string, rune, string] {
	m := make(MapGetter[string, rune, string])
	for _, h := range ps.Hashes() {
		n, _ := ps.Get(h)
		m[h] = n
	}
	return m
}

var testPairs = map[string]string{
	"":      "root",
	"abc":   "hello",
	"abcde": "world",
	"b":     "bee",
	"ba":    "bay",
	"xyz":   "last",
}

func TestGenerateAndVerifySingleHop(t *testing.T) {
	require := require.New(t)

	n1 := newTestNode(map[rune]string{}, maybe.Some("hello"))
	r := newTestNode(map[rune]string{'a': n1.Hash()}, maybe.Nothing[string]())
	tr := &testTrie{
		root:  r,
		nodes: map[string]*testNode{r.Hash(): r, n1.Hash(): n1},
	}

	ps, err := generate(tr, "a")
	require.NoError(err)
	require.Equal(2, ps.Len())
	require.Equal([]string{r.Hash(), n1.Hash()}, ps.Hashes())
	got, ok := ps.Get(n1.Hash())
	require.True(ok)
	require.Equal(Node[string, rune, string](n1), got)

	valid, value := verify(r.Hash(), "a", ps)
	require.True(valid)
	require.Equal(maybe.Some("hello"), value)

	valid, value = verify(r.Hash(), "b", ps)
	require.False(valid)
	require.True(value.IsNothing())
}

func TestRoundTrip(t *testing.T) {
	tr := newTestTrie(testPairs)
	for key, want := range testPairs {
		t.Run(fmt.Sprintf("key %q", key), func(t *testing.T) {
			require := require.New(t)

			ps, err := generate(tr, key)
			require.NoError(err)
			// minimality: one node per consumed symbol plus the terminal node
			require.Equal(utf8.RuneCountInString(key)+1, ps.Len())
			require.Equal(tr.root.Hash(), ps.Hashes()[0])

			valid, value := verify(tr.root.Hash(), key, ps)
			require.True(valid)
			require.Equal(maybe.Some(want), value)
		})
	}
}

func TestVerifyPathWithoutValue(t *testing.T) {
	require := require.New(t)

	tr := newTestTrie(testPairs)
	ps, err := generate(tr, "abcd")
	require.NoError(err)

	valid, value := verify(tr.root.Hash(), "abcd", ps)
	require.True(valid)
	require.True(value.IsNothing())
}

func TestGeneratePathBroken(t *testing.T) {
	tr := newTestTrie(testPairs)
	for _, key := range []string{"q", "abq", "abcdef", "xyzz"} {
		ps, err := generate(tr, key)
		require.ErrorIs(t, err, ErrPathBroken, key)
		require.Nil(t, ps, key)
	}
}

func TestGenerateDanglingReference(t *testing.T) {
	require := require.New(t)

	tr := newTestTrie(testPairs)
	ps, err := generate(tr, "abc")
	require.NoError(err)
	// drop the node reached through "ab"
	delete(tr.nodes, ps.Hashes()[2])

	ps, err = generate(tr, "abc")
	require.ErrorIs(err, ErrPathBroken)
	require.Nil(ps)

	// keys that avoid the dangling node are unaffected
	_, err = generate(tr, "xyz")
	require.NoError(err)
}

func TestGenerateResolveError(t *testing.T) {
	require := require.New(t)

	errIO := errors.New("disk on fire")
	tr := newTestTrie(testPairs)
	tr.resolve = func(string) (Node[string, rune, string], error) {
		return nil, errIO
	}
	ps, err := generate(tr, "abc")
	require.ErrorIs(err, errIO)
	require.NotErrorIs(err, ErrPathBroken)
	require.Nil(ps)
}

func TestGenerateNoRoot(t *testing.T) {
	ps, err := generate(&testTrie{}, "")
	require.ErrorIs(t, err, ErrPathBroken)
	require.Nil(t, ps)
}

func TestZeroLengthKey(t *testing.T) {
	require := require.New(t)

	tr := newTestTrie(testPairs)
	ps, err := generate(tr, "")
	require.NoError(err)
	require.Equal(1, ps.Len())
	root, ok := ps.Get(tr.root.Hash())
	require.True(ok)
	require.Equal(Node[string, rune, string](tr.root), root)

	valid, value := verify(tr.root.Hash(), "", ps)
	require.True(valid)
	require.Equal(tr.root.Value(), value)
}

func TestTamperedValueIsRejected(t *testing.T) {
	tr := newTestTrie(testPairs)
	key := "abcde"
	ps, err := generate(tr, key)
	require.NoError(t, err)

	for depth, h := range ps.Hashes() {
		m := copyStore(ps)
		orig := m[h].(*testNode)
		m[h] = newTestNode(orig.branch, maybe.Some("forged"))

		valid, value := verify(tr.root.Hash(), key, m)
		require.False(t, valid, "depth %d", depth)
		require.True(t, value.IsNothing(), "depth %d", depth)
	}
}

func TestTamperedBranchIsRejected(t *testing.T) {
	tr := newTestTrie(testPairs)
	key := "abcde"
	ps, err := generate(tr, key)
	require.NoError(t, err)

	forged := newTestNode(map[rune]string{}, maybe.Some("forged"))
	for depth, h := range ps.Hashes() {
		m := copyStore(ps)
		orig := m[h].(*testNode)
		branch := make(map[rune]string, len(orig.branch)+1)
		for sym, child := range orig.branch {
			branch[sym] = child
		}
		if depth < len(key) {
			branch[rune(key[depth])] = forged.Hash()
		} else {
			branch['!'] = forged.Hash()
		}
		m[h] = newTestNode(branch, orig.value)
		m[forged.Hash()] = forged

		valid, _ := verify(tr.root.Hash(), key, m)
		require.False(t, valid, "depth %d", depth)
	}
}

func TestTruncatedProofIsRejected(t *testing.T) {
	tr := newTestTrie(testPairs)
	key := "abcde"
	ps, err := generate(tr, key)
	require.NoError(t, err)

	for depth, h := range ps.Hashes() {
		m := copyStore(ps)
		delete(m, h)
		valid, value := verify(tr.root.Hash(), key, m)
		require.False(t, valid, "depth %d", depth)
		require.True(t, value.IsNothing(), "depth %d", depth)
	}
}

func TestVerifyAgainstOtherRoot(t *testing.T) {
	require := require.New(t)

	tr := newTestTrie(testPairs)
	ps, err := generate(tr, "abc")
	require.NoError(err)

	updated := make(map[string]string, len(testPairs)+1)
	for k, v := range testPairs {
		updated[k] = v
	}
	updated["efg"] = "trie"
	other := newTestTrie(updated)

	valid, _ := verify(other.root.Hash(), "abc", ps)
	require.False(valid)

	// a proof for one key does not prove a longer key
	valid, _ = verify(tr.root.Hash(), "abcde", ps)
	require.False(valid)
}

func TestTypedNilNodeIsRejected(t *testing.T) {
	require := require.New(t)

	tr := newTestTrie(testPairs)
	ps, err := generate(tr, "abc")
	require.NoError(err)

	for depth, h := range ps.Hashes() {
		m := copyStore(ps)
		m[h] = (*testNode)(nil)
		var valid bool
		require.NotPanics(func() {
			valid, _ = verify(tr.root.Hash(), "abc", m)
		})
		require.False(valid, depth)
	}
}

func TestConcurrentVerify(t *testing.T) {
	tr := newTestTrie(testPairs)
	ps, err := generate(tr, "abcde")
	require.NoError(t, err)

	var wg sync.WaitGroup
	results := make([]bool, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _ = verify(tr.root.Hash(), "abcde", ps)
		}(i)
	}
	wg.Wait()
	for i, valid := range results {
		require.True(t, valid, "verifier %d", i)
	}
}

func TestStorePutKeepsOrder(t *testing.T) {
	require := require.New(t)

	a := newTestNode(nil, maybe.Some("a"))
	b := newTestNode(nil, maybe.Some("b"))
	s := NewStore[string, rune, string]()
	s.Put(a.Hash(), a)
	s.Put(b.Hash(), b)
	s.Put(a.Hash(), a)
	require.Equal(2, s.Len())
	require.Equal([]string{a.Hash(), b.Hash()}, s.Hashes())
	require.Equal([]Node[string, rune, string]{a, b}, s.Nodes())

	_, ok := s.Get("missing")
	require.False(ok)
}
