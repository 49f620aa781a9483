package syncclient

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/brickprod/callsheet-api/internal/models"
)

func project(id, name string, updatedAt time.Time) models.Project {
	return models.Project{
		ID:        id,
		Name:      name,
		Status:    models.ProjectStatusActive,
		CreatedAt: updatedAt.Add(-time.Hour),
		UpdatedAt: updatedAt,
	}
}

func byID(items []models.Project) map[string]models.Project {
	out := make(map[string]models.Project, len(items))
	for _, item := range items {
		out[item.ID] = item
	}
	return out
}

var t0 = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func TestMergeLocalOnlyRecordSurvives(t *testing.T) {
	server := []models.Project{project("s1", "server", t0)}
	local := []models.Project{project("l1", "local only", t0)}

	merged := MergeByTimestamp(server, local)

	assert.Len(t, merged, 2)
	assert.Contains(t, byID(merged), "s1")
	assert.Contains(t, byID(merged), "l1")
}

func TestMergeLastWriteWins(t *testing.T) {
	server := []models.Project{project("p1", "stale", t0)}
	local := []models.Project{project("p1", "fresh", t0.Add(time.Minute))}

	merged := MergeByTimestamp(server, local)

	assert.Len(t, merged, 1)
	assert.Equal(t, "fresh", merged[0].Name)
}

func TestMergeServerWinsWhenNewer(t *testing.T) {
	server := []models.Project{project("p1", "fresh", t0.Add(time.Minute))}
	local := []models.Project{project("p1", "stale", t0)}

	merged := MergeByTimestamp(server, local)

	assert.Len(t, merged, 1)
	assert.Equal(t, "fresh", merged[0].Name)
}

func TestMergeServerWinsTies(t *testing.T) {
	server := []models.Project{project("p1", "server copy", t0)}
	local := []models.Project{project("p1", "local copy", t0)}

	merged := MergeByTimestamp(server, local)

	assert.Len(t, merged, 1)
	assert.Equal(t, "server copy", merged[0].Name)
}

// Re-merging an already-merged result against the same local set changes
// nothing.
func TestMergeIdempotent(t *testing.T) {
	server := []models.Project{
		project("a", "server a", t0),
		project("b", "server b", t0.Add(2*time.Minute)),
	}
	local := []models.Project{
		project("b", "local b", t0.Add(5*time.Minute)),
		project("c", "local c", t0),
	}

	once := MergeByTimestamp(server, local)
	twice := MergeByTimestamp(once, local)

	assert.Equal(t, once, twice)
}

func TestMergeDeterministicOrder(t *testing.T) {
	server := []models.Project{
		project("a", "a", t0),
		project("b", "b", t0),
	}
	local := []models.Project{
		project("c", "c", t0),
		project("a", "a-local", t0.Add(time.Minute)),
		project("d", "d", t0),
	}

	merged := MergeByTimestamp(server, local)

	ids := make([]string, len(merged))
	for i, item := range merged {
		ids[i] = item.ID
	}
	// Server order first, then local-only records in local order.
	assert.Equal(t, []string{"a", "b", "c", "d"}, ids)
	assert.Equal(t, "a-local", merged[0].Name, "newer local version replaces the server record in place")
}

func TestMergeEmptyInputs(t *testing.T) {
	assert.Empty(t, MergeByTimestamp[models.Project](nil, nil))

	server := []models.Project{project("s", "s", t0)}
	assert.Equal(t, server, MergeByTimestamp(server, nil))

	local := []models.Project{project("l", "l", t0)}
	assert.Equal(t, local, MergeByTimestamp(nil, local))
}
