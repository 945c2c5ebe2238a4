package relationship

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Function arguments and LET bindings take subqueries only in parenthesized
// form; a bare SELECT there fails to parse server-side, where no unit test
// would catch it.
func TestAllocateRewardQuery_SubqueriesParenthesized(t *testing.T) {
	bare := regexp.MustCompile(`(?:\w::\w+\(|= )SELECT\b`)
	assert.NotRegexp(t, bare, allocateRewardQuery)
	assert.Contains(t, allocateRewardQuery, "array::len((SELECT")
}
