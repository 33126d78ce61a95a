package catalog

func compressionEntries() map[Code]Entry {
	return map[Code]Entry{
		"COMPRESSION_FAILED": entry(
			text("프로젝트 압축에 실패했습니다", "Failed to compress the project"),
			text("레이어 수를 줄인 후 다시 시도해주세요", "Please reduce the number of layers and try again"),
			text("다시 시도", "Try Again"),
		),
		"DECOMPRESSION_FAILED": entry(
			text("프로젝트 압축 해제에 실패했습니다", "Failed to decompress the project"),
			text("파일이 손상되지 않았는지 확인해주세요", "Please make sure the file is not damaged"),
			text("다른 파일 열기", "Open Another File"),
		),
		"CORRUPTED_DATA": entry(
			text("데이터가 손상되었습니다", "The data is corrupted"),
			text("백업 파일에서 복원해주세요", "Please restore from a backup"),
			text("백업에서 복원", "Restore Backup"),
		),
		"UNSUPPORTED_FORMAT": entry(
			text("지원하지 않는 압축 형식입니다", "Unsupported compression format"),
			text("최신 버전의 편집기로 저장한 파일인지 확인해주세요", "Please make sure the file was saved with the latest editor"),
			text("다른 파일 열기", "Open Another File"),
		),
	}
}
