package repository

// ブラウザのlocalStorage相当（キーごとにJSONを1つ保存）。
// 無いキーはErrNotFound。
type LocalStorage interface {
	GetItem(key string) ([]byte, error)
	SetItem(key string, value []byte) error
	RemoveItem(key string) error
}
