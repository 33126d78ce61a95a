package catalog

func generalEntries() map[Code]Entry {
	return map[Code]Entry{
		FallbackCode: entry(
			text("알 수 없는 오류가 발생했습니다", "An unknown error occurred"),
			text("페이지를 새로고침하거나 잠시 후 다시 시도해주세요", "Please refresh the page or try again later"),
			text("새로고침", "Refresh"),
		),
		"INVALID_INPUT": entry(
			text("입력값이 올바르지 않습니다", "Invalid input"),
			text("입력한 내용을 확인해주세요", "Please check what you entered"),
			text("다시 입력", "Try Again"),
		),
		"OPERATION_CANCELLED": entry(
			text("작업이 취소되었습니다", "The operation was cancelled"),
			text("필요하면 작업을 다시 시작해주세요", "Start the operation again if needed"),
			text("다시 시작", "Start Again"),
		),
		"BROWSER_NOT_SUPPORTED": entry(
			text("지원하지 않는 브라우저입니다", "This browser is not supported"),
			text("최신 버전의 Chrome, Edge, Firefox를 사용해주세요", "Please use the latest Chrome, Edge or Firefox"),
			text("브라우저 업데이트", "Update Browser"),
		),
		"MAINTENANCE": entry(
			text("서비스 점검 중입니다", "The service is under maintenance"),
			text("점검이 끝난 후 다시 이용해주세요", "Please come back after the maintenance is complete"),
			text("새로고침", "Refresh"),
		),
	}
}
