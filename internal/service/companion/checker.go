// Package companion 로컬 생성 서버(동반 서버)의 /health 엔드포인트를 주기적으로 확인합니다.
package companion

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	apperrors "github.com/darkkaiser/errcat-server/internal/pkg/errors"
	"github.com/tidwall/gjson"
)

// component 동반 서버 헬스체크 로깅용 컴포넌트 이름
const component = "service.companion"

// maxBodyBytes 헬스체크 응답 본문 중 읽어들이는 최대 크기입니다.
const maxBodyBytes = 64 * 1024

// Status 한 번의 헬스체크 결과입니다.
type Status struct {
	Healthy    bool
	StatusCode int
	Latency    time.Duration
	CheckedAt  time.Time

	// Err 비정상 판정의 원인 (정상이면 nil)
	Err error
}

// Checker 동반 서버의 헬스체크 URL에 GET 요청을 보내 상태를 판정합니다.
type Checker struct {
	url     string
	timeout time.Duration
	client  *http.Client

	now func() time.Time
}

// NewChecker 요청마다 timeout을 적용하는 Checker를 생성합니다.
func NewChecker(url string, timeout time.Duration) *Checker {
	return &Checker{
		url:     url,
		timeout: timeout,
		client: &http.Client{
			Timeout: timeout,
		},

		now: time.Now,
	}
}

// Check 헬스체크를 한 번 수행합니다.
//
// 응답 상태 코드가 2xx이고, 본문이 status 필드를 가진 JSON이라면 그 값이 ok 또는 healthy일 때 정상으로 판정합니다.
// 본문이 JSON이 아니거나 status 필드가 없으면 상태 코드만으로 판정합니다.
func (c *Checker) Check(ctx context.Context) Status {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	started := c.now()
	status := Status{CheckedAt: started}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		status.Err = apperrors.Wrap(err, apperrors.InvalidInput, "헬스체크 요청을 생성할 수 없습니다")
		return status
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	status.Latency = c.now().Sub(started)
	if err != nil {
		errType := apperrors.Unavailable
		var netErr net.Error
		if ctx.Err() != nil || (errors.As(err, &netErr) && netErr.Timeout()) {
			errType = apperrors.Timeout
		}
		status.Err = apperrors.Wrap(err, errType, "동반 서버에 연결할 수 없습니다")
		return status
	}
	defer resp.Body.Close()

	status.StatusCode = resp.StatusCode

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		status.Err = apperrors.Newf(apperrors.Unavailable, "동반 서버가 비정상 상태 코드를 반환했습니다 (status_code=%d)", resp.StatusCode)
		return status
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		status.Err = apperrors.Wrap(err, apperrors.Unavailable, "헬스체크 응답 본문을 읽을 수 없습니다")
		return status
	}

	if err := checkBody(body); err != nil {
		status.Err = err
		return status
	}

	status.Healthy = true
	return status
}

// checkBody JSON 본문의 status 필드를 검사합니다.
func checkBody(body []byte) error {
	if !gjson.ValidBytes(body) {
		return nil
	}

	field := gjson.GetBytes(body, "status")
	if !field.Exists() {
		return nil
	}

	switch strings.ToLower(strings.TrimSpace(field.String())) {
	case "ok", "healthy":
		return nil
	default:
		return apperrors.New(apperrors.Unavailable, fmt.Sprintf("동반 서버가 비정상 상태를 보고했습니다 (status=%q)", field.String()))
	}
}
