package session

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/monicarachel101026-prog/Nailora/internal/lib/jwt"
	"github.com/monicarachel101026-prog/Nailora/internal/migrations"
	"github.com/monicarachel101026-prog/Nailora/internal/models"
	"github.com/monicarachel101026-prog/Nailora/internal/storage/kvstore"
	"github.com/monicarachel101026-prog/Nailora/internal/storage/repository"
)

func newMemStore(t *testing.T) *kvstore.Store {
	t.Helper()
	store, err := kvstore.NewMemory(0)
	require.NoError(t, err)
	require.NoError(t, migrations.Run(store.DB))
	t.Cleanup(func() {
		_ = store.Close()
	})
	return store
}

func newTestService(t *testing.T) (*Service, *repository.Repository) {
	t.Helper()
	persistent := newMemStore(t)
	repo := repository.New(persistent)
	sessions := repository.NewSessionStore(persistent, newMemStore(t))
	maker := jwt.NewJWTMaker("test_secret", time.Hour, 720*time.Hour)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(repo, sessions, maker, 0, logger), repo
}

func TestRegister_Success(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	user, token, err := svc.Register(ctx, models.DummyRegister{Name: "Ana", Email: "ana@x.com", Password: "secret1"})
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.NotEmpty(t, token)
	assert.NotEmpty(t, user.ID)
	assert.False(t, user.ProfileComplete)
	assert.NotEmpty(t, user.Avatar)

	// Пользователь появляется и в коллекции, и в активной сессии.
	users, err := repo.LoadUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, user.ID, users[0].ID)

	current, err := svc.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, user.ID, current.ID)
}

func TestRegister_DuplicateEmailLeavesCollectionUnchanged(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	_, _, err := svc.Register(ctx, models.DummyRegister{Name: "Ana", Email: "ana@x.com", Password: "secret1"})
	require.NoError(t, err)

	_, _, err = svc.Register(ctx, models.DummyRegister{Name: "Other", Email: "ana@x.com", Password: "secret2"})
	assert.ErrorIs(t, err, ErrEmailTaken)

	users, err := repo.LoadUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestRegister_UniqueIDs(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	first, _, err := svc.Register(ctx, models.DummyRegister{Name: "Ana", Email: "ana@x.com", Password: "secret1"})
	require.NoError(t, err)
	second, _, err := svc.Register(ctx, models.DummyRegister{Name: "Luna", Email: "luna@x.com", Password: "secret2"})
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
}

func TestLogin_InvalidCredentialsWriteNoSession(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, _, err := svc.Register(ctx, models.DummyRegister{Name: "Ana", Email: "ana@x.com", Password: "secret1"})
	require.NoError(t, err)
	require.NoError(t, svc.Logout(ctx))

	tests := []struct {
		name string
		req  models.DummyLogin
	}{
		{name: "неизвестный email", req: models.DummyLogin{Email: "ghost@x.com", Password: "secret1"}},
		{name: "неверный пароль", req: models.DummyLogin{Email: "ana@x.com", Password: "wrong"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := svc.Login(ctx, tt.req)
			assert.ErrorIs(t, err, ErrInvalidCredentials)

			_, err = svc.Current(ctx)
			assert.ErrorIs(t, err, ErrNoSession)
		})
	}
}

func TestLogin_RememberChoosesPersistentTier(t *testing.T) {
	persistent := newMemStore(t)
	ephemeral := newMemStore(t)
	repo := repository.New(persistent)
	sessions := repository.NewSessionStore(persistent, ephemeral)
	maker := jwt.NewJWTMaker("test_secret", time.Hour, 720*time.Hour)
	svc := New(repo, sessions, maker, 0, slog.New(slog.NewTextHandler(io.Discard, nil)))
	ctx := context.Background()

	_, _, err := svc.Register(ctx, models.DummyRegister{Name: "Ana", Email: "ana@x.com", Password: "secret1"})
	require.NoError(t, err)
	require.NoError(t, svc.Logout(ctx))

	_, _, err = svc.Login(ctx, models.DummyLogin{Email: "ana@x.com", Password: "secret1", Remember: false})
	require.NoError(t, err)

	user, tier, err := sessions.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, repository.TierEphemeral, tier)
}

func TestCompleteProfile_AnaScenario(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	user, _, err := svc.Register(ctx, models.DummyRegister{Name: "Ana", Email: "ana@x.com", Password: "secret1"})
	require.NoError(t, err)
	assert.False(t, user.ProfileComplete)

	updated, err := svc.CompleteProfile(ctx, "Ana R.")
	require.NoError(t, err)
	assert.Equal(t, "Ana R.", updated.Name)
	assert.True(t, updated.ProfileComplete)

	// Коллекция пользователей синхронизирована с сессией.
	stored, err := repo.FindUserByEmail(ctx, "ana@x.com")
	require.NoError(t, err)
	assert.Equal(t, "Ana R.", stored.Name)
	assert.True(t, stored.ProfileComplete)
}

func TestActivatePremium_TrialAndPlans(t *testing.T) {
	tests := []struct {
		name     string
		plan     string
		wantDays int
	}{
		{name: "пробный период", plan: models.PlanTrial, wantDays: 3},
		{name: "месячный план", plan: models.PlanMonthly, wantDays: 30},
		{name: "годовой план", plan: models.PlanYearly, wantDays: 365},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newTestService(t)
			ctx := context.Background()

			_, _, err := svc.Register(ctx, models.DummyRegister{Name: "Ana", Email: "ana@x.com", Password: "secret1"})
			require.NoError(t, err)

			user, err := svc.ActivatePremium(ctx, tt.plan, "E-Wallet")
			require.NoError(t, err)
			assert.True(t, user.IsPremium)
			require.NotNil(t, user.Subscription)
			assert.Equal(t, tt.plan, user.Subscription.Plan)
			assert.Equal(t, models.SubscriptionActive, user.Subscription.Status)

			wantBilling := user.Subscription.StartDate.AddDate(0, 0, tt.wantDays)
			assert.Equal(t, wantBilling, user.Subscription.NextBillingDate)

			stored, err := repo.FindUserByEmail(ctx, "ana@x.com")
			require.NoError(t, err)
			assert.True(t, stored.IsPremium)
			require.NotNil(t, stored.Subscription)
		})
	}
}

func TestCancelSubscription_RequiresPremium(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, _, err := svc.Register(ctx, models.DummyRegister{Name: "Ana", Email: "ana@x.com", Password: "secret1"})
	require.NoError(t, err)

	_, err = svc.CancelSubscription(ctx)
	assert.ErrorIs(t, err, ErrNotPremium)

	_, err = svc.ActivatePremium(ctx, models.PlanMonthly, "E-Wallet")
	require.NoError(t, err)

	user, err := svc.CancelSubscription(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.SubscriptionCanceled, user.Subscription.Status)
	assert.False(t, user.Subscription.AutoRenew)
	assert.True(t, user.IsPremium)
}

func TestLogout_ClearsSession(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, _, err := svc.Register(ctx, models.DummyRegister{Name: "Ana", Email: "ana@x.com", Password: "secret1"})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx))

	_, err = svc.Current(ctx)
	assert.ErrorIs(t, err, ErrNoSession)

	restored, err := svc.Restore(ctx)
	require.NoError(t, err)
	assert.Nil(t, restored)
}

func TestRestore_SplashDelay(t *testing.T) {
	persistent := newMemStore(t)
	repo := repository.New(persistent)
	sessions := repository.NewSessionStore(persistent, newMemStore(t))
	maker := jwt.NewJWTMaker("test_secret", time.Hour, 720*time.Hour)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := New(repo, sessions, maker, 40*time.Millisecond, logger)
	ctx := context.Background()

	_, _, err := svc.Register(ctx, models.DummyRegister{Name: "Ana", Email: "ana@x.com", Password: "secret1"})
	require.NoError(t, err)

	start := time.Now()
	restored, err := svc.Restore(ctx)
	require.NoError(t, err)
	require.NotNil(t, restored)
	assert.GreaterOrEqual(t, time.Since(start), 40*time.Millisecond)

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = svc.Restore(cancelled)
	assert.ErrorIs(t, err, context.Canceled)
}
