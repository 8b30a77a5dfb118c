package store

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-draft-keeper/internal/logger"
	"github.com/MKhiriev/go-draft-keeper/models"
)

// ── helpers ───────────────────────────────────────────────────────────────────

// stagingStub is a map-backed StagingArea with controllable mod times.
type stagingStub struct {
	data  map[string][]byte
	times map[string]time.Time
	now   time.Time
}

func newStagingStub() *stagingStub {
	return &stagingStub{
		data:  map[string][]byte{},
		times: map[string]time.Time{},
		now:   time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
	}
}

func (s *stagingStub) Write(_ context.Context, name string, data []byte) error {
	s.data[name] = data
	s.times[name] = s.now
	return nil
}

func (s *stagingStub) Read(_ context.Context, name string) ([]byte, time.Time, error) {
	d, ok := s.data[name]
	if !ok {
		return nil, time.Time{}, ErrStagingEntryNotFound
	}
	return d, s.times[name], nil
}

func (s *stagingStub) Remove(_ context.Context, name string) error {
	delete(s.data, name)
	delete(s.times, name)
	return nil
}

func (s *stagingStub) List(_ context.Context, prefix string) ([]StagingEntry, error) {
	var out []StagingEntry
	for name := range s.data {
		if len(name) >= len(prefix) && name[:len(prefix)] == prefix {
			out = append(out, StagingEntry{Name: name, ModTime: s.times[name]})
		}
	}
	return out, nil
}

// ── draft storage ─────────────────────────────────────────────────────────────

func TestDraftName(t *testing.T) {
	assert.Equal(t, "draft-5-9.json", DraftName(5, 9))
	assert.Equal(t, "usercookie-9", UserCookieName(9))
}

func TestDraftStorage_FileFormat(t *testing.T) {
	stub := newStagingStub()
	storage := NewDraftStorage(stub, logger.Nop())

	info := models.IdentityInfo{PageID: 5, UserID: 9, Time: 100, Token: "tok"}
	err := storage.SaveDraft(context.Background(), models.Draft{
		PageID: 5, UserID: 9,
		Fields: models.Fields{"title": "New"},
		Info:   info,
	})
	require.NoError(t, err)

	var flat map[string]string
	require.NoError(t, json.Unmarshal(stub.data["draft-5-9.json"], &flat))
	assert.Equal(t, "New", flat["title"])

	var stored models.IdentityInfo
	require.NoError(t, json.Unmarshal([]byte(flat[models.InfoKey]), &stored))
	assert.Equal(t, info, stored)
}

func TestDraftStorage_RoundTrip(t *testing.T) {
	storage := NewDraftStorage(newStagingStub(), logger.Nop())
	ctx := context.Background()

	in := models.Draft{
		PageID: 5, UserID: 9,
		Fields: models.Fields{"title": "New", "body": "text"},
		Info:   models.IdentityInfo{PageID: 5, UserID: 9, Token: "tok", PostCookie: "pc"},
	}
	require.NoError(t, storage.SaveDraft(ctx, in))

	out, err := storage.LoadDraft(ctx, 5, 9)
	require.NoError(t, err)
	assert.Equal(t, in, out)

	require.NoError(t, storage.DeleteDraft(ctx, 5, 9))
	require.NoError(t, storage.DeleteDraft(ctx, 5, 9))

	_, err = storage.LoadDraft(ctx, 5, 9)
	assert.ErrorIs(t, err, ErrDraftNotFound)
}

func TestDraftStorage_InvalidFiles(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "not json", data: "{"},
		{name: "non-string value", data: `{"title": 1}`},
		{name: "missing info", data: `{"title": "x"}`},
		{name: "broken info", data: `{"_rescue_info": "{"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := newStagingStub()
			stub.data[DraftName(5, 9)] = []byte(tt.data)

			_, err := NewDraftStorage(stub, logger.Nop()).LoadDraft(context.Background(), 5, 9)
			assert.ErrorIs(t, err, ErrInvalidDraftFile)
		})
	}
}

func TestDraftStorage_Sweep(t *testing.T) {
	stub := newStagingStub()
	storage := NewDraftStorage(stub, logger.Nop())
	ctx := context.Background()

	require.NoError(t, storage.SaveDraft(ctx, models.Draft{PageID: 1, UserID: 1}))
	stub.times[DraftName(1, 1)] = stub.now.Add(-25 * time.Hour)
	require.NoError(t, storage.SaveDraft(ctx, models.Draft{PageID: 2, UserID: 1}))
	stub.data["usercookie-1"] = []byte("old")
	stub.times["usercookie-1"] = stub.now.Add(-30 * 24 * time.Hour)

	removed, err := storage.SweepDrafts(ctx, stub.now.Add(-24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 1, removed)

	_, err = storage.LoadDraft(ctx, 1, 1)
	assert.ErrorIs(t, err, ErrDraftNotFound)
	_, err = storage.LoadDraft(ctx, 2, 1)
	assert.NoError(t, err)
	assert.Contains(t, stub.data, "usercookie-1")
}

// ── cookie shadow storage ─────────────────────────────────────────────────────

func TestCookieShadowStorage(t *testing.T) {
	stub := newStagingStub()
	storage := NewCookieShadowStorage(stub, logger.Nop())
	ctx := context.Background()

	_, _, err := storage.LoadUserCookie(ctx, 9)
	assert.ErrorIs(t, err, ErrUserCookieNotFound)

	require.NoError(t, storage.SaveUserCookie(ctx, 9, "secret"))
	value, modTime, err := storage.LoadUserCookie(ctx, 9)
	require.NoError(t, err)
	assert.Equal(t, "secret", value)
	assert.Equal(t, stub.now, modTime)

	stub.times[UserCookieName(9)] = stub.now.Add(-8 * 24 * time.Hour)
	removed, err := storage.SweepUserCookies(ctx, stub.now.Add(-7*24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 1, removed)
}
