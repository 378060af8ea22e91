package filestorage

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

var ErrOutsideLocation = errors.New("path outside storage location")

type SimpleFileStorage struct {
	fs       afero.Fs
	location string
}

// fs为nil时使用操作系统的文件系统
func NewSimpleFileStorage(fs afero.Fs, location string) FileStorage {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &SimpleFileStorage{
		fs:       fs,
		location: location,
	}
}

// uniqueID直接作为location下的相对路径，中间目录按需创建
// 已存在的文件直接覆盖
func (s *SimpleFileStorage) Store(uniqueID string, content []byte) (string, error) {
	fp, err := s.resolve(uniqueID)
	if err != nil {
		return fp, err
	}

	err = s.fs.MkdirAll(filepath.Dir(fp), os.ModePerm)
	if err != nil {
		if os.IsExist(err) {
			err = nil // ignore
		} else {
			return fp, err
		}
	}

	f, err := s.fs.OpenFile(fp, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0666)
	if err != nil {
		return fp, err
	}
	defer f.Close()

	if _, err = f.Write(content); err != nil {
		return fp, err
	}
	return fp, f.Close()
}

// 通过 ../ 之类的id逃逸出location的情况一律拒绝
func (s *SimpleFileStorage) resolve(uniqueID string) (string, error) {
	root := filepath.Clean(s.location)
	fp := filepath.Join(root, filepath.FromSlash(uniqueID))
	if fp == root {
		return fp, ErrOutsideLocation
	}
	rel, err := filepath.Rel(root, fp)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return fp, ErrOutsideLocation
	}
	return fp, nil
}
