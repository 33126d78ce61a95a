package catalog

func authEntries() map[Code]Entry {
	return map[Code]Entry{
		"UNAUTHORIZED": entry(
			text("로그인이 필요합니다", "You need to log in"),
			text("계속하려면 로그인해주세요", "Please log in to continue"),
			text("로그인", "Log In"),
		),
		"SESSION_EXPIRED": entry(
			text("세션이 만료되었습니다", "Session expired"),
			text("다시 로그인해주세요", "Please log in again"),
			text("다시 로그인", "Log In Again"),
		),
		"FORBIDDEN": entry(
			text("접근 권한이 없습니다", "You do not have permission"),
			text("권한이 필요하면 관리자에게 문의해주세요", "Please contact an administrator if you need access"),
			text("돌아가기", "Go Back"),
		),
		"INVALID_CREDENTIALS": entry(
			text("이메일 또는 비밀번호가 올바르지 않습니다", "Invalid email or password"),
			text("입력한 정보를 확인한 후 다시 시도해주세요", "Please check your details and try again"),
			text("다시 입력", "Try Again"),
		),
		"ACCOUNT_LOCKED": entry(
			text("계정이 잠겼습니다", "Your account is locked"),
			text("비밀번호를 재설정하거나 고객센터에 문의해주세요", "Please reset your password or contact support"),
			text("비밀번호 재설정", "Reset Password"),
		),
	}
}
