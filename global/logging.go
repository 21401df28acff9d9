package global

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"sync"

	"github.com/samber/lo"
)

const (
	mb         = 1000000
	maxLogSize = 2.5 * mb
	maxLogs    = 2
)

// RollingFileWriter appends to <Dir>/<Name>.log. Once that file reaches MaxSize it is
// archived as <Name>-1.log, older archives shift up, and anything past MaxArchives is deleted.
type RollingFileWriter struct {
	Dir         string
	Name        string
	MaxSize     int64
	MaxArchives int

	mu sync.Mutex
}

type archivedLog struct {
	path  string
	index int
}

func NewRollingFileWriter(fileDir string, fileName string) (*RollingFileWriter, error) {
	absFileDir, err := filepath.Abs(fileDir)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(absFileDir, 0750); err != nil {
		return nil, err
	}

	return &RollingFileWriter{
		Dir:         absFileDir,
		Name:        fileName,
		MaxSize:     maxLogSize,
		MaxArchives: maxLogs,
	}, nil
}

func (w *RollingFileWriter) mainPath() string {
	return filepath.Join(w.Dir, w.Name+".log")
}

func (w *RollingFileWriter) archivePath(index int) string {
	return filepath.Join(w.Dir, fmt.Sprintf("%s-%d.log", w.Name, index))
}

func (w *RollingFileWriter) Write(b []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if stats, err := os.Stat(w.mainPath()); err == nil && stats.Size() > 0 && stats.Size()+int64(len(b)) > w.MaxSize {
		if err := w.rotate(); err != nil {
			return 0, err
		}
	}

	mainLogFile, err := os.OpenFile(w.mainPath(), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return 0, err
	}
	defer mainLogFile.Close()

	return mainLogFile.Write(b)
}

// archives lists archived logs, highest index first. Files whose index can't be read get index -1.
func (w *RollingFileWriter) archives() ([]archivedLog, error) {
	matches, err := fs.Glob(os.DirFS(w.Dir), w.Name+"-*.log")
	if err != nil {
		return nil, err
	}

	logs := lo.Map(matches, func(match string, _ int) archivedLog {
		return archivedLog{
			path:  filepath.Join(w.Dir, match),
			index: logIndex(w.Name, match),
		}
	})

	slices.SortFunc(logs, func(a, b archivedLog) int {
		return b.index - a.index
	})

	return logs, nil
}

// rotate works from the oldest archive down so renames never collide
func (w *RollingFileWriter) rotate() error {
	logs, err := w.archives()
	if err != nil {
		return err
	}

	for _, archived := range logs {
		if archived.index < 1 || archived.index >= w.MaxArchives {
			if err := os.Remove(archived.path); err != nil {
				return err
			}
			continue
		}

		if err := os.Rename(archived.path, w.archivePath(archived.index+1)); err != nil {
			return err
		}
	}

	if w.MaxArchives < 1 {
		return os.Remove(w.mainPath())
	}

	return os.Rename(w.mainPath(), w.archivePath(1))
}

func logIndex(baseFileName string, filePath string) int {
	fileName, _ := strings.CutSuffix(filepath.Base(filePath), ".log")
	indexStr, ok := strings.CutPrefix(fileName, baseFileName+"-")
	if !ok {
		return -1
	}

	index, err := strconv.Atoi(indexStr)
	if err != nil {
		return -1
	}

	return index
}
