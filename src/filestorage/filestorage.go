package filestorage

type FileStorage interface {
	// 返回写入的最终路径
	Store(uniqueID string, content []byte) (string, error)
}
