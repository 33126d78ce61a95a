package catalog

func generationEntries() map[Code]Entry {
	return map[Code]Entry{
		"PROMPT_TOO_LONG": entry(
			text("프롬프트가 너무 깁니다", "The prompt is too long"),
			text("프롬프트를 더 짧게 작성해주세요", "Please write a shorter prompt"),
			text("프롬프트 수정", "Edit Prompt"),
		),
		"PROMPT_EMPTY": entry(
			text("프롬프트가 비어 있습니다", "The prompt is empty"),
			text("생성할 이미지를 설명하는 프롬프트를 입력해주세요", "Please describe the image you want to generate"),
			text("프롬프트 입력", "Enter Prompt"),
		),
		"CONTENT_POLICY_VIOLATION": entry(
			text("콘텐츠 정책에 위배되는 요청입니다", "This request violates the content policy"),
			text("프롬프트 내용을 수정한 후 다시 시도해주세요", "Please revise your prompt and try again"),
			text("프롬프트 수정", "Edit Prompt"),
		),
		"GENERATION_FAILED": entry(
			text("이미지 생성에 실패했습니다", "Image generation failed"),
			text("잠시 후 다시 시도해주세요", "Please try again in a moment"),
			text("다시 생성", "Regenerate"),
		),
		"GENERATION_TIMEOUT": entry(
			text("이미지 생성 시간이 초과되었습니다", "Image generation timed out"),
			text("캔버스 크기를 줄이거나 잠시 후 다시 시도해주세요", "Try a smaller canvas or try again later"),
			text("다시 생성", "Regenerate"),
		),
		"MODEL_UNAVAILABLE": entry(
			text("생성 모델을 사용할 수 없습니다", "The generation model is unavailable"),
			text("다른 모델을 선택하거나 잠시 후 다시 시도해주세요", "Please choose another model or try again later"),
			text("모델 변경", "Change Model"),
		),
		"INVALID_CANVAS_SIZE": entry(
			text("지원하지 않는 캔버스 크기입니다", "Unsupported canvas size"),
			text("지원되는 크기 중 하나를 선택해주세요", "Please choose one of the supported sizes"),
			text("크기 변경", "Change Size"),
		),
	}
}
