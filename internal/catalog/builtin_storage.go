package catalog

func storageEntries() map[Code]Entry {
	return map[Code]Entry{
		"STORAGE_QUOTA_EXCEEDED": entry(
			text("저장 공간이 부족합니다", "Storage quota exceeded"),
			text("사용하지 않는 프로젝트를 삭제한 후 다시 시도해주세요", "Please delete unused projects and try again"),
			text("프로젝트 관리", "Manage Projects"),
		),
		"SAVE_FAILED": entry(
			text("저장에 실패했습니다", "Failed to save"),
			text("작업 내용을 파일로 내보낸 후 다시 시도해주세요", "Please export your work to a file and try again"),
			text("다시 저장", "Save Again"),
		),
		"LOAD_FAILED": entry(
			text("불러오기에 실패했습니다", "Failed to load"),
			text("페이지를 새로고침한 후 다시 시도해주세요", "Please refresh the page and try again"),
			text("다시 불러오기", "Reload"),
		),
		"FILE_NOT_FOUND": entry(
			text("파일을 찾을 수 없습니다", "File not found"),
			text("파일이 이동되었거나 삭제되었는지 확인해주세요", "Please check whether the file was moved or deleted"),
			text("파일 선택", "Choose File"),
		),
		"FILE_TOO_LARGE": entry(
			text("파일이 너무 큽니다", "The file is too large"),
			text("더 작은 파일을 선택해주세요", "Please choose a smaller file"),
			text("파일 선택", "Choose File"),
		),
		"UNSUPPORTED_FILE_TYPE": entry(
			text("지원하지 않는 파일 형식입니다", "Unsupported file type"),
			text("PNG, JPG, GIF 파일만 업로드할 수 있습니다", "Only PNG, JPG and GIF files can be uploaded"),
			text("파일 선택", "Choose File"),
		),
	}
}
