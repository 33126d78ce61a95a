package api

import (
	apperrors "github.com/darkkaiser/errcat-server/internal/pkg/errors"
)

var (
	// ErrCatalogNotInitialized 서비스 시작 시 카탈로그가 준비되지 않았을 때 반환하는 에러입니다.
	ErrCatalogNotInitialized = apperrors.New(apperrors.Internal, "에러 카탈로그가 초기화되지 않았습니다")
)
