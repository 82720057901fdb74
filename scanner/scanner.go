package scanner

import (
	"os"
	"path/filepath"
	"sort"
	"sync"
)

// markdownExtensions is the default extension filter.
var markdownExtensions = []string{".md", ".markdown"}

type FileInfo struct {
	Path string
	Size int64
}

// Scanner collects candidate document files under a root directory.
type Scanner struct {
	rootDir    string
	extensions []string
}

// New returns a scanner rooted at rootDir. With no explicit extensions it
// looks for markdown files.
func New(rootDir string, extensions ...string) *Scanner {
	if len(extensions) == 0 {
		extensions = markdownExtensions
	}
	return &Scanner{
		rootDir:    rootDir,
		extensions: extensions,
	}
}

// Scan walks the tree and returns matching files sorted by path.
func (s *Scanner) Scan() ([]FileInfo, error) {
	var (
		files []FileInfo
		mutex sync.Mutex
		wg    sync.WaitGroup
	)

	err := filepath.Walk(s.rootDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if info.IsDir() {
			return nil
		}

		if s.isTargetFile(path) {
			wg.Add(1)
			go func() {
				defer wg.Done()
				fileInfo := FileInfo{
					Path: path,
					Size: info.Size(),
				}
				mutex.Lock()
				files = append(files, fileInfo)
				mutex.Unlock()
			}()
		}
		return nil
	})

	wg.Wait()

	sort.Slice(files, func(i, j int) bool { return files[i].Path < files[j].Path })
	return files, err
}

func (s *Scanner) isTargetFile(path string) bool {
	ext := filepath.Ext(path)
	for _, target := range s.extensions {
		if ext == target {
			return true
		}
	}
	return false
}
