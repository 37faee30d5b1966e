package service

import (
	"errors"

	"cgpa_tracker/internal/model"
	"cgpa_tracker/internal/repository"
	"cgpa_tracker/internal/util"
	"cgpa_tracker/pkg/logger"

	"go.uber.org/zap"
)

// TranscriptService 持有进程内唯一的成绩单，处理录入与存取的业务规则
type TranscriptService struct {
	Repo       *repository.TranscriptRepository
	transcript model.Transcript
}

func NewTranscriptService(repo *repository.TranscriptRepository) *TranscriptService {
	return &TranscriptService{Repo: repo}
}

// AddSemester 接收一个构建完成的学期并取得所有权
func (s *TranscriptService) AddSemester(sem model.Semester) {
	s.transcript.AddSemester(sem)
	logger.Log.Info("semester added",
		zap.Int("courses", len(sem.Courses())),
		zap.Int("semesters", len(s.transcript.Semesters())))
}

// Semesters 返回当前全部学期的只读视图
func (s *TranscriptService) Semesters() []model.Semester {
	return s.transcript.Semesters()
}

// CGPA 当前成绩单的总加权平均绩点
func (s *TranscriptService) CGPA() float64 {
	return s.transcript.CGPA()
}

// Save 序列化到数据文件，出错时内存状态保持不变
func (s *TranscriptService) Save() error {
	if err := s.Repo.Save(s.transcript.Semesters()); err != nil {
		logger.Log.Error("save failed", zap.Error(err))
		return err
	}
	logger.Log.Info("transcript saved",
		zap.Int("semesters", len(s.transcript.Semesters())))
	return nil
}

// Load 从数据文件重建成绩单
// 文件不存在：返回 ErrNoSavedData，内存状态不动
// 文件损坏：返回错误并清空全部学期，绝不留下半加载状态
func (s *TranscriptService) Load() error {
	semesters, err := s.Repo.Load()
	if err != nil {
		if errors.Is(err, util.ErrNoSavedData) {
			logger.Log.Info("no saved data", zap.String("path", s.Repo.Path))
			return err
		}
		s.transcript.Clear()
		logger.Log.Error("load failed, transcript cleared", zap.Error(err))
		return err
	}
	s.transcript.Replace(semesters)
	logger.Log.Info("transcript loaded", zap.Int("semesters", len(semesters)))
	return nil
}
