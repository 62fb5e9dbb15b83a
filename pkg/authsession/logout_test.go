package authsession_test

import (
	"context"
	"net/http"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wemolhq/wemolkit/pkg/authsession"
)

func TestClient_Logout_AllSessions(t *testing.T) {
	t.Parallel()

	f := newFixture(t, "ant_uid=alice; ant_uid_sys=sys1", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	ok := f.client.Logout(context.Background(), true)
	assert.True(t, ok)

	// Both markers gone locally.
	assert.False(t, f.client.IsLoggedIn())

	// Both role endpoints were invalidated.
	paths := f.log.recorded()
	sort.Strings(paths)
	assert.Equal(t, []string{"/api/sys/logout", "/api/user/logout"}, paths)
}

func TestClient_Logout_SingleSession(t *testing.T) {
	t.Parallel()

	t.Run("user markers target user endpoint", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t, "ant_uid=alice; ant_uid_sys=sys1", nil)

		assert.True(t, f.client.Logout(context.Background(), false))
		assert.Equal(t, []string{"/api/user/logout"}, f.log.recorded())
	})

	t.Run("secondary-only markers target sys endpoint", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t, "ant_uid_sys=sys1", nil)

		assert.True(t, f.client.Logout(context.Background(), false))
		assert.Equal(t, []string{"/api/sys/logout"}, f.log.recorded())
	})

	t.Run("last login role wins over markers", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t, "", jsonResponse(t, `{"success":true}`))

		ok, err := f.client.Login(context.Background(), "admin", "secret", authsession.RoleSys)
		require.NoError(t, err)
		require.True(t, ok)

		assert.True(t, f.client.Logout(context.Background(), false))
		assert.Equal(t, []string{"/api/sys/login", "/api/sys/logout"}, f.log.recorded())
	})
}

func TestClient_Logout_ServerDown(t *testing.T) {
	t.Parallel()

	// Both server calls fail with network errors; logout still succeeds and
	// local markers are still cleared.
	f := newOfflineFixture(t, "ant_uid=alice; ant_uid_sys=sys1")

	ok := f.client.Logout(context.Background(), true)
	assert.True(t, ok)
	assert.False(t, f.client.IsLoggedIn())
	assert.NotContains(t, f.jar.Raw(), "ant_uid=")
	assert.NotContains(t, f.jar.Raw(), "ant_uid_sys=")
}

func TestClient_Logout_ServerRejects(t *testing.T) {
	t.Parallel()

	f := newFixture(t, "ant_uid=alice", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	assert.True(t, f.client.Logout(context.Background(), true))
	assert.False(t, f.client.IsLoggedIn())
}
