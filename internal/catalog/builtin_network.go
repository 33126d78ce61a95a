package catalog

func networkEntries() map[Code]Entry {
	return map[Code]Entry{
		"NETWORK_ERROR": entry(
			text("네트워크 오류가 발생했습니다", "A network error occurred"),
			text("인터넷 연결을 확인한 후 다시 시도해주세요", "Please check your internet connection and try again"),
			text("다시 시도", "Try Again"),
		),
		"REQUEST_TIMEOUT": entry(
			text("요청 시간이 초과되었습니다", "The request timed out"),
			text("잠시 후 다시 시도해주세요", "Please try again in a moment"),
			text("다시 시도", "Try Again"),
		),
		"CONNECTION_LOST": entry(
			text("서버와의 연결이 끊어졌습니다", "Connection to the server was lost"),
			text("연결이 복구되면 자동으로 다시 연결됩니다", "We will reconnect automatically once the connection is restored"),
			text("다시 연결", "Reconnect"),
		),
		"SERVER_UNAVAILABLE": entry(
			text("서버를 사용할 수 없습니다", "The server is unavailable"),
			text("서버가 일시적으로 응답하지 않습니다. 잠시 후 다시 시도해주세요", "The server is temporarily not responding. Please try again later"),
			text("다시 시도", "Try Again"),
		),
		"COMPANION_SERVER_DOWN": entry(
			text("로컬 서버가 실행되고 있지 않습니다", "The local server is not running"),
			text("로컬 서버를 실행한 후 다시 시도해주세요", "Please start the local server and try again"),
			text("연결 확인", "Check Connection"),
		),
		"RATE_LIMITED": entry(
			text("요청이 너무 많습니다", "Too many requests"),
			text("잠시 기다린 후 다시 시도해주세요", "Please wait a moment before trying again"),
			text("잠시 후 재시도", "Retry Later"),
		),
	}
}
