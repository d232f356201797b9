package http

import (
	"reportlog-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// @Summary Log in with a user token
// @Description Verify a user token and issue a session JWT (returned and set as cookie)
// @Tags Authentication
// @Accept json
// @Produce json
// @Param body body loginReq true "Credentials"
// @Success 200 {object} loginResp
// @Failure 400 {object} response.Resp
// @Failure 401 {object} response.Resp
// @Router /api/v1/auth/login [post]
func (h *handler) Login(c *gin.Context) {
	ctx := c.Request.Context()

	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Errorf(ctx, "authentication.delivery.http.Login: ShouldBindJSON failed: %v", err)
		response.Error(c, errWrongBody)
		return
	}

	o, err := h.uc.Login(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "authentication.delivery.http.Login: usecase Login failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	h.setAuthCookie(c, o.AccessToken, int(o.ExpiresIn))

	response.OK(c, h.newLoginResp(o))
}

// @Summary Log out
// @Description Clear the session cookie
// @Tags Authentication
// @Produce json
// @Success 200 {object} response.Resp
// @Router /api/v1/auth/logout [post]
func (h *handler) Logout(c *gin.Context) {
	h.setAuthCookie(c, "", -1)
	response.OK(c, nil)
}

func (h *handler) setAuthCookie(c *gin.Context, token string, maxAge int) {
	c.SetCookie(
		h.cookieConfig.Name,
		token,
		maxAge,
		"/",
		h.cookieConfig.Domain,
		h.cookieConfig.Secure,
		true, // httpOnly
	)
}
