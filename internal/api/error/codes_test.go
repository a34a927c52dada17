package error

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusCode(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, RecipeNotFound.StatusCode())
	assert.Equal(t, http.StatusConflict, UsernameConflict.StatusCode())
	assert.Equal(t, 0, UnknownError.StatusCode())
	assert.Equal(t, 0, ErrorCode("made_up").StatusCode())
}

func TestCodeOf(t *testing.T) {
	cause := errors.New("no rows")
	err := fmt.Errorf("loading recipe: %w", New(RecipeNotFound, "Recipe not found", cause))

	assert.Equal(t, RecipeNotFound, CodeOf(err))
	assert.Equal(t, "Recipe not found", MessageOf(err, "fallback"))
	assert.ErrorIs(t, err, cause)

	assert.Equal(t, UnknownError, CodeOf(cause))
	assert.Equal(t, "fallback", MessageOf(cause, "fallback"))
	assert.Equal(t, UnknownError, CodeOf(nil))
}

func TestErrorString(t *testing.T) {
	assert.Equal(t, "invalid_credentials: bad password", New(InvalidCredentials, "Invalid credentials", errors.New("bad password")).Error())
	assert.Equal(t, "login_required: Please log in", New(LoginRequired, "Please log in", nil).Error())
}
