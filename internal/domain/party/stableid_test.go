package party

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExternalStableID_Deterministic(t *testing.T) {
	t.Parallel()

	ns := KindIssue.Namespace("11111111-1111-1111-1111-111111111111")

	first := ExternalStableID(ns, "avery@lane-goods.example")
	second := ExternalStableID(ns, "avery@lane-goods.example")
	assert.Equal(t, first, second)

	// Email normalization: case and surrounding whitespace are ignored.
	assert.Equal(t, first, ExternalStableID(ns, "  AVERY@Lane-Goods.Example  "))
}

func TestExternalStableID_NamespaceSeparation(t *testing.T) {
	t.Parallel()

	email := "avery@lane-goods.example"
	issueNS := KindIssue.Namespace("11111111-1111-1111-1111-111111111111")
	otherIssueNS := KindIssue.Namespace("22222222-2222-2222-2222-222222222222")
	rfpNS := KindRFP.Namespace("11111111-1111-1111-1111-111111111111")

	a := ExternalStableID(issueNS, email)
	b := ExternalStableID(otherIssueNS, email)
	c := ExternalStableID(rfpNS, email)

	assert.NotEqual(t, a, b, "different resources must yield different ids")
	assert.NotEqual(t, a, c, "same id under a different kind must yield a different id")
	assert.NotEqual(t, b, c)
}

func TestExternalStableID_Format(t *testing.T) {
	t.Parallel()

	id := ExternalStableID("issue:x", "someone@example.com")
	assert.Regexp(t, "^ext-[0-9a-f]{32}$", id)
	assert.NotContains(t, id, "@", "raw email must never leak into the id")
}

func TestRandomStableID(t *testing.T) {
	t.Parallel()

	id := RandomStableID()
	assert.Regexp(t, "^ext-[0-9a-f]{32}$", id)
	assert.NotEqual(t, id, RandomStableID())
}

func TestSoftSessionStableID(t *testing.T) {
	t.Parallel()

	ns := KindIssue.Namespace("abc")

	withEmail := SoftSession{Name: "Avery", Email: "avery@example.com", FallbackID: "ext-fallback"}
	require.Equal(t, ExternalStableID(ns, "avery@example.com"), withEmail.StableID(ns))

	withoutEmail := SoftSession{Name: "Avery", FallbackID: "ext-fallback"}
	require.Equal(t, "ext-fallback", withoutEmail.StableID(ns))
}
