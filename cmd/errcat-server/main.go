package main

import (
	"fmt"
	"os"
)

// @title Error Catalog Server API
// @version 1.0.0
// @description 에러 코드를 사용자에게 보여줄 한국어/영어 안내 문구로 변환하는 에러 카탈로그 서버의 REST API입니다.
// @description
// @description ## 주요 기능
// @description - 에러 코드 해석 (메시지, 해결 방법 제안, 동작 버튼 문구)
// @description - 카테고리별 에러 목록 조회
// @description - lang 파라미터 또는 Accept-Language 헤더 기반 언어 선택 (ko, en)
// @description
// @description 등록되지 않은 코드는 실패하지 않고 UNKNOWN_ERROR 항목으로 응답합니다.

// @contact.name DarkKaiser
// @contact.url https://github.com/DarkKaiser
// @contact.email darkkaiser@gmail.com

// @license.name MIT

// @BasePath /

const (
	banner = `
  _____                      ____        _
 | ____| _ __  _ __  ___   / ___| __ _ | |_
 |  _|  | '__|| '__|/ _ \ | |    / _` + "`" + ` || __|
 | |___ | |   | |  | (_) || |___| (_| || |_
 |_____||_|   |_|   \___/  \____|\__,_| \__|
                                                 %s
                                                        developed by DarkKaiser
--------------------------------------------------------------------------------
`
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "[FATAL] %v\n", err)
		os.Exit(1)
	}
}
