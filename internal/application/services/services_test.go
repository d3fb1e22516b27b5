package services_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/GitPiyusha/flask-microblog/internal/application/command"
	"github.com/GitPiyusha/flask-microblog/internal/application/interfaces"
	"github.com/GitPiyusha/flask-microblog/internal/application/services"
	"github.com/GitPiyusha/flask-microblog/internal/infrastructure"
	"github.com/GitPiyusha/flask-microblog/internal/infrastructure/db/gormdb"
)

const testBaseURL = "http://localhost:8080"

// captureMailer records the reset mails a test triggers instead of
// sending them.
type captureMailer struct {
	to       string
	resetURL string
	sent     int
}

func (m *captureMailer) SendPasswordReset(_ context.Context, toEmail, resetURL string) error {
	m.to = toEmail
	m.resetURL = resetURL
	m.sent++
	return nil
}

type testEnv struct {
	users   interfaces.UserService
	follows interfaces.FollowService
	posts   interfaces.PostService
	feed    interfaces.FeedService
	mailer  *captureMailer
	tokens  *infrastructure.ResetTokenService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gormdb.Open("sqlite", dsn)
	require.NoError(t, err)
	require.NoError(t, gormdb.Migrate(db))

	userRepo := gormdb.NewUserRepository(db)
	followRepo := gormdb.NewFollowRepository(db)
	postRepo := gormdb.NewPostRepository(db)

	mailer := &captureMailer{}
	tokens := infrastructure.NewResetTokenService("test-secret", 10*time.Minute)

	return &testEnv{
		users:   services.NewUserService(userRepo, tokens, mailer, testBaseURL, zerolog.Nop()),
		follows: services.NewFollowService(followRepo, userRepo),
		posts:   services.NewPostService(postRepo, userRepo),
		feed:    services.NewFeedService(postRepo),
		mailer:  mailer,
		tokens:  tokens,
	}
}

func (env *testEnv) register(t *testing.T, username string) uint {
	t.Helper()

	result, err := env.users.Register(context.Background(), &command.RegisterUserCommand{
		Username: username,
		Email:    username + "@example.com",
		Password: "cat",
	})
	require.NoError(t, err)
	return result.Result.Id
}
