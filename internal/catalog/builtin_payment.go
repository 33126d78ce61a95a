package catalog

func paymentEntries() map[Code]Entry {
	return map[Code]Entry{
		"PAYMENT_FAILED": entry(
			text("결제에 실패했습니다", "Payment failed"),
			text("결제 정보를 확인한 후 다시 시도해주세요", "Please check your payment details and try again"),
			text("다시 결제", "Retry Payment"),
		),
		"CARD_DECLINED": entry(
			text("카드 결제가 거절되었습니다", "Your card was declined"),
			text("다른 카드를 사용하거나 카드사에 문의해주세요", "Please use another card or contact your card issuer"),
			text("결제 수단 변경", "Change Payment Method"),
		),
		"INSUFFICIENT_CREDITS": entry(
			text("크레딧이 부족합니다", "Not enough credits"),
			text("크레딧을 충전한 후 다시 시도해주세요", "Please top up your credits and try again"),
			text("크레딧 충전", "Buy Credits"),
		),
		"SUBSCRIPTION_EXPIRED": entry(
			text("구독이 만료되었습니다", "Your subscription has expired"),
			text("구독을 갱신하면 모든 기능을 다시 사용할 수 있습니다", "Renew your subscription to regain access to all features"),
			text("구독 갱신", "Renew Subscription"),
		),
		"PAYMENT_CANCELLED": entry(
			text("결제가 취소되었습니다", "Payment was cancelled"),
			text("결제를 계속하려면 다시 시도해주세요", "Please try again to complete the payment"),
			text("다시 결제", "Retry Payment"),
		),
	}
}
