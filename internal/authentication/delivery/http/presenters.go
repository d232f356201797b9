package http

import "reportlog-srv/internal/authentication"

type loginReq struct {
	Username string `json:"user_name" binding:"required"`
	Token    string `json:"token" binding:"required"`
}

func (r loginReq) toInput() authentication.LoginInput {
	return authentication.LoginInput{
		Username: r.Username,
		Token:    r.Token,
	}
}

type loginResp struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
	UserID      string `json:"user_id"`
	Username    string `json:"user_name"`
	Groups      []int  `json:"groups"`
}

func (h *handler) newLoginResp(o authentication.LoginOutput) loginResp {
	return loginResp{
		AccessToken: o.AccessToken,
		TokenType:   "Bearer",
		ExpiresIn:   o.ExpiresIn,
		UserID:      o.UserID,
		Username:    o.Username,
		Groups:      o.Groups,
	}
}
