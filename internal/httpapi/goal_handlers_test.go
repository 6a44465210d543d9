package httpapi

import (
	"net/http"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGoalEndpoints(t *testing.T) {
	r := newTestRouter(t, "goals")

	register(t, r, "a@x.com", "alice", "p1")
	id := strconv.FormatInt(login(t, r, "a@x.com", "p1"), 10)

	// Registration seeds the default goal.
	code, body := do(t, r, http.MethodGet, "/goal/get", map[string]string{"id": id})
	require.Equal(t, http.StatusOK, code)
	require.EqualValues(t, 2000, body["data"])

	// Missing user is a 404, not a crash.
	code, body = do(t, r, http.MethodGet, "/goal/get", map[string]string{"id": "9999"})
	require.Equal(t, http.StatusNotFound, code)
	require.Equal(t, msgUserNotFound, body["error"])

	// Missing or non-numeric params are validation failures.
	code, _ = do(t, r, http.MethodGet, "/goal/get", nil)
	require.Equal(t, http.StatusBadRequest, code)
	code, _ = do(t, r, http.MethodPut, "/goal/change", map[string]string{"id": id})
	require.Equal(t, http.StatusBadRequest, code)
	code, _ = do(t, r, http.MethodPut, "/goal/change", map[string]string{"id": id, "newGoal": "lots"})
	require.Equal(t, http.StatusBadRequest, code)

	// Change and read back.
	code, body = do(t, r, http.MethodPut, "/goal/change", map[string]string{
		"id": id, "newGoal": "3000",
	})
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, "successfully changed goal", body["data"])

	code, body = do(t, r, http.MethodGet, "/goal/get", map[string]string{"id": id})
	require.Equal(t, http.StatusOK, code)
	require.EqualValues(t, 3000, body["data"])

	// Changing the goal of a missing user affects zero rows and still
	// acknowledges.
	code, body = do(t, r, http.MethodPut, "/goal/change", map[string]string{
		"id": "9999", "newGoal": "1500",
	})
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, "successfully changed goal", body["data"])
}
