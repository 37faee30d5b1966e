package app

import (
	"os"

	"cgpa_tracker/internal/config"
	"cgpa_tracker/internal/controller"
	"cgpa_tracker/internal/repository"
	"cgpa_tracker/internal/service"
	"cgpa_tracker/internal/util"
	"cgpa_tracker/pkg/logger"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

type App struct {
	Config *config.Config
	Menu   *controller.MenuController
}

// NewApp 按 配置 -> 日志 -> 仓库 -> 服务 -> 控制器 的顺序完成装配
func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)

	repo := repository.NewTranscriptRepository(afero.NewOsFs(), cfg.Storage.DataFile)
	svc := service.NewTranscriptService(repo)
	prompter := util.NewPrompter(os.Stdin, os.Stdout)
	menu := controller.NewMenuController(svc, prompter, cfg.Limits, os.Stdout)

	return &App{
		Config: cfg,
		Menu:   menu,
	}
}

// Run 运行菜单循环直到退出
func (a *App) Run() {
	logger.Log.Info("cgpa tracker started",
		zap.String("data_file", a.Config.Storage.DataFile))
	a.Menu.Run()
	logger.Log.Info("cgpa tracker stopped")
}
