package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestStaffOnlyMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name    string
		role    string
		subRole string
		want    int
	}{
		{"receptionist role passes", "receptionist", "", http.StatusOK},
		{"manager sub-role passes", "staff", "manager", http.StatusOK},
		{"admin role passes case-insensitively", "ADMIN", "", http.StatusOK},
		{"customer is rejected", "customer", "", http.StatusForbidden},
		{"missing claims are rejected", "", "", http.StatusForbidden},
		{"therapist is not staff", "therapist", "", http.StatusForbidden},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			router := gin.New()
			router.Use(func(c *gin.Context) {
				c.Set(CtxRole, tc.role)
				c.Set(CtxSubRole, tc.subRole)
			})
			router.Use(StaffOnlyMiddleware())
			router.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
			if w.Code != tc.want {
				t.Errorf("role %q / sub-role %q: status = %d, want %d", tc.role, tc.subRole, w.Code, tc.want)
			}
		})
	}
}
