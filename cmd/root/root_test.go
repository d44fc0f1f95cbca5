package root_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"fjacquet/bank-ledger/cmd/root"
)

func TestRootCommand_Metadata(t *testing.T) {
	assert.Equal(t, "bank-ledger", root.Cmd.Use)
	assert.Contains(t, root.Cmd.Short, "canonical ledger")
	assert.NotNil(t, root.Cmd.Run)
	assert.NotNil(t, root.Cmd.PersistentPreRun)
}

func TestInitRegistersSnapshotFlag(t *testing.T) {
	root.Init()

	flag := root.Cmd.PersistentFlags().Lookup("snapshot")
	assert.NotNil(t, flag)
	assert.Equal(t, "s", flag.Shorthand)
}
