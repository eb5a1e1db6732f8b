package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAccessRecord_IsQualifying(t *testing.T) {
	t.Parallel()

	assert.True(t, (&AccessRecord{StatusCode: "200"}).IsQualifying())
	assert.False(t, (&AccessRecord{StatusCode: "404"}).IsQualifying())
	assert.False(t, (&AccessRecord{StatusCode: "201"}).IsQualifying())
}

func TestUsageSnapshot_IsEmpty(t *testing.T) {
	t.Parallel()

	snapshot := NewEmptyUsageSnapshot()
	assert.True(t, snapshot.IsEmpty())
	assert.NotNil(t, snapshot.APIKeyCounts)
	assert.NotNil(t, snapshot.APIServiceCounts)
	assert.NotNil(t, snapshot.BrowserCounts)

	snapshot.TotalQualifyingRequests = 1
	assert.False(t, snapshot.IsEmpty())
}
