package compact_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"fjacquet/bank-ledger/cmd/compact"
)

func TestCompactCommand_Metadata(t *testing.T) {
	assert.Equal(t, "compact", compact.Cmd.Use)
	assert.Contains(t, compact.Cmd.Short, "snapshot")
	assert.Contains(t, compact.Cmd.Long, "deduplicating merger")
	assert.NotNil(t, compact.Cmd.Run)
}
