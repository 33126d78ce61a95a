package catalog

// 내장 카테고리 이름
const (
	CategoryNetwork     = "network"
	CategoryAuth        = "auth"
	CategoryGeneration  = "generation"
	CategoryStorage     = "storage"
	CategoryCompression = "compression"
	CategoryPayment     = "payment"
	CategoryGeneral     = "general"
)

// Builtin 내장 카테고리를 병합 순서대로 반환합니다.
//
// 순서: network, auth, generation, storage, compression, payment, general.
// 코드가 겹치면 뒤의 카테고리가 우선하므로 순서를 바꾸면 해석 결과가 달라질 수 있습니다.
// 호출할 때마다 새 값을 반환하므로 반환값을 수정해도 다른 호출자에게 영향을 주지 않습니다.
func Builtin() []Category {
	return []Category{
		{Name: CategoryNetwork, Entries: networkEntries()},
		{Name: CategoryAuth, Entries: authEntries()},
		{Name: CategoryGeneration, Entries: generationEntries()},
		{Name: CategoryStorage, Entries: storageEntries()},
		{Name: CategoryCompression, Entries: compressionEntries()},
		{Name: CategoryPayment, Entries: paymentEntries()},
		{Name: CategoryGeneral, Entries: generalEntries()},
	}
}

// text 한국어, 영어 순서로 LocalizedText를 만듭니다.
func text(ko, en string) *LocalizedText {
	return &LocalizedText{Ko: ko, En: en}
}

// entry message, suggestion, action을 모두 갖춘 항목을 만듭니다.
func entry(message, suggestion, action *LocalizedText) Entry {
	return Entry{Message: *message, Suggestion: suggestion, Action: action}
}
