package http

import (
	"context"
	"net/http"

	"github.com/taskops-lab/riskregister/pkg/domain/types"
)

// ActingUserHeader carries the authenticated user's ID as resolved by the
// external auth layer in front of this service
const ActingUserHeader = "X-Acting-User"

type actingUserKey struct{}

// actingUser is a middleware that extracts the acting user from the request
// header into the context. An absent header leaves the user empty, which the
// role resolver treats as viewer.
func actingUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := types.UserID(r.Header.Get(ActingUserHeader))
		ctx := context.WithValue(r.Context(), actingUserKey{}, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// actingUserFrom returns the acting user embedded in the context
func actingUserFrom(ctx context.Context) types.UserID {
	if userID, ok := ctx.Value(actingUserKey{}).(types.UserID); ok {
		return userID
	}
	return ""
}
