package provisioning

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLedger_RecordsInOrder(t *testing.T) {
	t.Parallel()
	l := NewLedger()

	l.Record("create-network", "network", "private", "n1")
	l.Complete("create-network")
	l.Record("create-subnet", "subnet", "private", "s1")
	l.Complete("create-subnet")
	l.Fail("create-router")

	assert.Equal(t, []string{"create-network", "create-subnet"}, l.Completed())
	assert.Equal(t, "create-router", l.FailedStep())
	assert.Equal(t, []Resource{
		{Step: "create-network", Kind: "network", Name: "private", ID: "n1"},
		{Step: "create-subnet", Kind: "subnet", Name: "private", ID: "s1"},
	}, l.Committed())
}

func TestLedger_Find(t *testing.T) {
	t.Parallel()
	l := NewLedger()
	l.Record("create-router", "router", "router", "r1")

	r, ok := l.Find("router")
	require.True(t, ok)
	assert.Equal(t, "r1", r.ID)

	_, ok = l.Find("subnet")
	assert.False(t, ok)
}

func TestLedger_ReturnsCopies(t *testing.T) {
	t.Parallel()
	l := NewLedger()
	l.Record("s", "network", "private", "n1")
	l.Complete("s")

	l.Committed()[0].ID = "changed"
	l.Completed()[0] = "changed"

	assert.Equal(t, "n1", l.Committed()[0].ID)
	assert.Equal(t, "s", l.Completed()[0])
}

func TestLedger_ConcurrentRecord(t *testing.T) {
	t.Parallel()
	l := NewLedger()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			l.Record("s", "port", "p", "id")
		}()
	}
	wg.Wait()

	assert.Len(t, l.Committed(), 50)
}
