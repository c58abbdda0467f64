package uri

import (
	"net/url"
	"strings"
)

// UserInfo is a container for user credentials of the authority component.
// Values are stored decoded and escaped on render.
type UserInfo struct {
	usrname, passwd string
	hasPasswd       bool
}

// User returns a [UserInfo] containing the provided username and no password.
func User(usrname string) UserInfo {
	return UserInfo{usrname: usrname}
}

// UserPassword returns a [UserInfo] containing the provided username and password.
func UserPassword(usrname, passwd string) UserInfo {
	return UserInfo{usrname: usrname, passwd: passwd, hasPasswd: true}
}

// parseUserInfo splits raw "user[:password]" credentials.
// Escapes that fail to decode are kept verbatim.
func parseUserInfo(raw string) UserInfo {
	usr, pwd, ok := strings.Cut(raw, ":")
	if !ok {
		return User(unescapeUserInfo(usr))
	}
	return UserPassword(unescapeUserInfo(usr), unescapeUserInfo(pwd))
}

func unescapeUserInfo(s string) string {
	if us, err := url.PathUnescape(s); err == nil {
		return us
	}
	return s
}

// Username returns the username from the UserInfo.
func (ui UserInfo) Username() string { return ui.usrname }

// Password returns the password, in case it is set, and a bool flag indicating whether it is set.
func (ui UserInfo) Password() (string, bool) { return ui.passwd, ui.hasPasswd }

// String returns the escaped "user[:password]" form.
func (ui UserInfo) String() string {
	if ui.hasPasswd {
		return url.UserPassword(ui.usrname, ui.passwd).String()
	}
	return url.User(ui.usrname).String()
}

// Equal compares this UserInfo with another for equality.
func (ui UserInfo) Equal(val any) bool {
	var other UserInfo
	switch v := val.(type) {
	case UserInfo:
		other = v
	case *UserInfo:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return ui.usrname == other.usrname && ui.passwd == other.passwd && ui.hasPasswd == other.hasPasswd
}

// IsValid checks whether the UserInfo has a username.
func (ui UserInfo) IsValid() bool { return ui.usrname != "" }

// IsZero checks whether the UserInfo is empty.
func (ui UserInfo) IsZero() bool { return ui.usrname == "" && ui.passwd == "" && !ui.hasPasswd }
