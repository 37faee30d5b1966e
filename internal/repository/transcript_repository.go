package repository

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"cgpa_tracker/internal/model"
	"cgpa_tracker/internal/util"

	"github.com/spf13/afero"
)

// 数据模型自身的边界，加载时强制检查，越界记录按损坏数据处理
const (
	gradeMin = 0
	gradeMax = 10
)

// TranscriptRepository 成绩单的纯文本文件仓库
// 文件格式：每学期先一行课程数，随后每行“成绩 学分”两个数值字段
type TranscriptRepository struct {
	FS   afero.Fs
	Path string
}

func NewTranscriptRepository(fs afero.Fs, path string) *TranscriptRepository {
	return &TranscriptRepository{FS: fs, Path: path}
}

// Save 将全部学期写入数据文件，任何出错路径上文件句柄都会释放
func (r *TranscriptRepository) Save(semesters []model.Semester) error {
	file, err := r.FS.Create(r.Path)
	if err != nil {
		return fmt.Errorf("open %s for writing: %w", r.Path, err)
	}
	defer file.Close()

	w := bufio.NewWriter(file)
	for i := range semesters {
		courses := semesters[i].Courses()
		if _, err := fmt.Fprintln(w, len(courses)); err != nil {
			return fmt.Errorf("write %s: %w", r.Path, err)
		}
		for _, c := range courses {
			_, err := fmt.Fprintf(w, "%s %s\n",
				strconv.FormatFloat(c.Grade, 'g', -1, 64),
				strconv.FormatFloat(c.Credit, 'g', -1, 64))
			if err != nil {
				return fmt.Errorf("write %s: %w", r.Path, err)
			}
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("write %s: %w", r.Path, err)
	}
	return nil
}

// Load 从数据文件解析全部学期
// 文件不存在返回 ErrNoSavedData；内容损坏返回 ErrCorruptData 或更具体的字段错误
func (r *TranscriptRepository) Load() ([]model.Semester, error) {
	file, err := r.FS.Open(r.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, util.ErrNoSavedData
		}
		return nil, fmt.Errorf("open %s: %w", r.Path, err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	var semesters []model.Semester
	for {
		countLine, ok := nextLine(scanner)
		if !ok {
			break
		}
		count, err := strconv.Atoi(countLine)
		if err != nil || count < 0 {
			return nil, fmt.Errorf("%w: bad course count %q", util.ErrCorruptData, countLine)
		}

		var sem model.Semester
		for i := 0; i < count; i++ {
			line, ok := nextLine(scanner)
			if !ok {
				return nil, fmt.Errorf("%w: expected %d courses, got %d", util.ErrCorruptData, count, i)
			}
			grade, credit, err := parseCourseLine(line)
			if err != nil {
				return nil, err
			}
			sem.AddCourse(grade, credit)
		}
		semesters = append(semesters, sem)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", r.Path, err)
	}
	return semesters, nil
}

func parseCourseLine(line string) (grade, credit float64, err error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("%w: bad course line %q", util.ErrCorruptData, line)
	}
	grade, err = strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: bad grade %q", util.ErrCorruptData, fields[0])
	}
	credit, err = strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: bad credit %q", util.ErrCorruptData, fields[1])
	}
	if grade < gradeMin || grade > gradeMax {
		return 0, 0, fmt.Errorf("%w: %g", util.ErrInvalidGrade, grade)
	}
	if credit <= 0 {
		return 0, 0, fmt.Errorf("%w: %g", util.ErrInvalidCredit, credit)
	}
	return grade, credit, nil
}

// nextLine 返回下一个非空行，空行跳过
func nextLine(scanner *bufio.Scanner) (string, bool) {
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			return line, true
		}
	}
	return "", false
}
