package fileutil

import (
	"bufio"
	"os"
	"path"
)

// FileExists checks if the file exists in the provided path
func FileExists(filename string) bool {
	info, err := os.Stat(filename)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// FolderExists checks if the folder exists
func FolderExists(foldername string) bool {
	info, err := os.Stat(foldername)
	if err != nil {
		return false
	}
	return info.IsDir()
}

type FileType = uint8

const (
	FILE_TXT FileType = iota
	FILE_JSON
	FILE_CSV
	NOT_FOUND
)

func FileExt(filename string) FileType {
	switch path.Ext(filename) {
	case ".txt":
		return FILE_TXT
	case ".json":
		return FILE_JSON
	case ".csv":
		return FILE_CSV
	default:
		return NOT_FOUND
	}
}

func BufferWriteAppend(file *os.File, content string) error {
	buf := bufio.NewWriter(file)
	if _, err := buf.WriteString(content); err != nil {
		return err
	}
	return buf.Flush()
}
