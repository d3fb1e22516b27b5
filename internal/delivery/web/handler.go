package web

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/GitPiyusha/flask-microblog/internal/application/command"
	"github.com/GitPiyusha/flask-microblog/internal/application/interfaces"
	"github.com/GitPiyusha/flask-microblog/internal/application/query"
	"github.com/GitPiyusha/flask-microblog/internal/application/services"
	"github.com/GitPiyusha/flask-microblog/internal/session"
)

type Handler struct {
	users      interfaces.UserService
	follows    interfaces.FollowService
	posts      interfaces.PostService
	feed       interfaces.FeedService
	sessions   session.Store
	sessionTTL time.Duration
	logger     zerolog.Logger
}

func NewHandler(
	users interfaces.UserService,
	follows interfaces.FollowService,
	posts interfaces.PostService,
	feed interfaces.FeedService,
	sessions session.Store,
	sessionTTL time.Duration,
	logger zerolog.Logger,
) *Handler {
	return &Handler{
		users:      users,
		follows:    follows,
		posts:      posts,
		feed:       feed,
		sessions:   sessions,
		sessionTTL: sessionTTL,
		logger:     logger,
	}
}

func (h *Handler) Register(c echo.Context) error {
	var registerCommand command.RegisterUserCommand
	if err := c.Bind(&registerCommand); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&registerCommand); err != nil {
		return err
	}

	result, err := h.users.Register(c.Request().Context(), &registerCommand)
	if err != nil {
		return h.mapServiceError(err)
	}

	return c.JSON(http.StatusCreated, result)
}

func (h *Handler) Login(c echo.Context) error {
	var loginCommand command.LoginUserCommand
	if err := c.Bind(&loginCommand); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&loginCommand); err != nil {
		return err
	}

	result, err := h.users.Authenticate(c.Request().Context(), &loginCommand)
	if err != nil {
		return h.mapServiceError(err)
	}

	sessionId, err := h.sessions.Create(c.Request().Context(), result.User.Id)
	if err != nil {
		return err
	}
	c.SetCookie(newSessionCookie(sessionId, h.sessionTTL))

	return c.JSON(http.StatusOK, result)
}

func (h *Handler) Logout(c echo.Context) error {
	if cookie, err := c.Cookie(sessionCookieName); err == nil && cookie.Value != "" {
		if err := h.sessions.Delete(c.Request().Context(), cookie.Value); err != nil {
			return err
		}
	}
	c.SetCookie(expiredSessionCookie())
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) CurrentUser(c echo.Context) error {
	result, err := h.users.FindUserById(c.Request().Context(), CurrentUserId(c))
	if err != nil {
		return h.mapServiceError(err)
	}
	return c.JSON(http.StatusOK, result)
}

func (h *Handler) UpdateProfile(c echo.Context) error {
	var updateCommand command.UpdateProfileCommand
	if err := c.Bind(&updateCommand); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&updateCommand); err != nil {
		return err
	}

	result, err := h.users.UpdateProfile(c.Request().Context(), CurrentUserId(c), &updateCommand)
	if err != nil {
		return h.mapServiceError(err)
	}

	return c.JSON(http.StatusOK, result)
}

// Profile returns a user's public page: the user, follow cardinalities and
// their posts, newest first.
func (h *Handler) Profile(c echo.Context) error {
	ctx := c.Request().Context()

	userResult, err := h.users.FindUserByUsername(ctx, c.Param("username"))
	if err != nil {
		return h.mapServiceError(err)
	}
	userId := userResult.Result.Id

	followerCount, err := h.follows.FollowerCount(ctx, userId)
	if err != nil {
		return err
	}
	followingCount, err := h.follows.FollowingCount(ctx, userId)
	if err != nil {
		return err
	}
	posts, err := h.posts.UserPosts(ctx, userId)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, &query.ProfileQueryResult{
		User:           userResult.Result,
		FollowerCount:  followerCount,
		FollowingCount: followingCount,
		Posts:          posts.Result,
	})
}

func (h *Handler) Follow(c echo.Context) error {
	ctx := c.Request().Context()

	target, err := h.users.FindUserByUsername(ctx, c.Param("username"))
	if err != nil {
		return h.mapServiceError(err)
	}

	if err := h.follows.Follow(ctx, CurrentUserId(c), target.Result.Id); err != nil {
		return h.mapServiceError(err)
	}

	return c.JSON(http.StatusOK, map[string]bool{"following": true})
}

func (h *Handler) Unfollow(c echo.Context) error {
	ctx := c.Request().Context()

	target, err := h.users.FindUserByUsername(ctx, c.Param("username"))
	if err != nil {
		return h.mapServiceError(err)
	}

	if err := h.follows.Unfollow(ctx, CurrentUserId(c), target.Result.Id); err != nil {
		return h.mapServiceError(err)
	}

	return c.JSON(http.StatusOK, map[string]bool{"following": false})
}

func (h *Handler) CreatePost(c echo.Context) error {
	var createCommand command.CreatePostCommand
	if err := c.Bind(&createCommand); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&createCommand); err != nil {
		return err
	}

	result, err := h.posts.CreatePost(c.Request().Context(), CurrentUserId(c), &createCommand)
	if err != nil {
		return h.mapServiceError(err)
	}

	return c.JSON(http.StatusCreated, result)
}

func (h *Handler) Feed(c echo.Context) error {
	result, err := h.feed.FollowingPosts(c.Request().Context(), CurrentUserId(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result)
}

// RequestPasswordReset answers 202 whether or not the email is known, so
// the endpoint cannot confirm account existence.
func (h *Handler) RequestPasswordReset(c echo.Context) error {
	var resetCommand command.RequestPasswordResetCommand
	if err := c.Bind(&resetCommand); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&resetCommand); err != nil {
		return err
	}

	if err := h.users.RequestPasswordReset(c.Request().Context(), &resetCommand); err != nil {
		return err
	}

	return c.NoContent(http.StatusAccepted)
}

func (h *Handler) ResetPassword(c echo.Context) error {
	var resetCommand command.ResetPasswordCommand
	if err := c.Bind(&resetCommand); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	resetCommand.Token = c.Param("token")
	if err := c.Validate(&resetCommand); err != nil {
		return err
	}

	if err := h.users.ResetPassword(c.Request().Context(), &resetCommand); err != nil {
		return h.mapServiceError(err)
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) mapServiceError(err error) error {
	switch {
	case errors.Is(err, services.ErrInvalidCredentials):
		return echo.NewHTTPError(http.StatusUnauthorized, services.ErrInvalidCredentials.Error())
	case errors.Is(err, services.ErrUsernameTaken), errors.Is(err, services.ErrEmailTaken):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, services.ErrUserNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrSelfFollow):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrInvalidResetToken):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return err
	}
}
