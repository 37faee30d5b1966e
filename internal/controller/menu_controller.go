package controller

import (
	"errors"
	"fmt"
	"io"

	"cgpa_tracker/internal/config"
	"cgpa_tracker/internal/model"
	"cgpa_tracker/internal/service"
	"cgpa_tracker/internal/util"
	"cgpa_tracker/pkg/logger"
)

const (
	choiceAddSemester = 1
	choiceDisplay     = 2
	choiceSave        = 3
	choiceLoad        = 4
	choiceExit        = 5
)

// MenuController 交互菜单循环，所有格式化输出集中在这一层
type MenuController struct {
	Service  *service.TranscriptService
	Prompter *util.Prompter
	Limits   config.LimitsConfig
	Out      io.Writer
}

func NewMenuController(svc *service.TranscriptService, prompter *util.Prompter, limits config.LimitsConfig, out io.Writer) *MenuController {
	return &MenuController{
		Service:  svc,
		Prompter: prompter,
		Limits:   limits,
		Out:      out,
	}
}

// Run 运行菜单循环直到用户选择退出；输入源关闭时也正常结束
func (c *MenuController) Run() {
	for {
		c.printMenu()
		choice, err := c.Prompter.Int("Enter choice: ", choiceAddSemester, choiceExit)
		if err != nil {
			logger.Log.Info("input closed, exiting menu loop")
			return
		}

		switch choice {
		case choiceAddSemester:
			if err := c.addSemester(); err != nil {
				logger.Log.Info("input closed during entry, exiting menu loop")
				return
			}
		case choiceDisplay:
			c.displayAll()
		case choiceSave:
			c.save()
		case choiceLoad:
			c.load()
		case choiceExit:
			fmt.Fprintln(c.Out, "Exiting program.")
			return
		}
	}
}

func (c *MenuController) printMenu() {
	fmt.Fprintln(c.Out)
	fmt.Fprintln(c.Out, "--- CGPA CALCULATOR MENU ---")
	fmt.Fprintln(c.Out, "1. Add Semester")
	fmt.Fprintln(c.Out, "2. Display Result")
	fmt.Fprintln(c.Out, "3. Save to File")
	fmt.Fprintln(c.Out, "4. Load from File")
	fmt.Fprintln(c.Out, "5. Exit")
}

// addSemester 录入完整的一个学期后才交给 service，录入中断时学期被丢弃
func (c *MenuController) addSemester() error {
	count, err := c.Prompter.Int("Enter number of courses: ", 1, c.Limits.MaxCourses)
	if err != nil {
		return err
	}

	var sem model.Semester
	for i := 0; i < count; i++ {
		gradePrompt := fmt.Sprintf("Enter numeric grade (%g-%g): ", c.Limits.GradeMin, c.Limits.GradeMax)
		grade, err := c.Prompter.Float64(gradePrompt, c.Limits.GradeMin, c.Limits.GradeMax)
		if err != nil {
			return err
		}
		credit, err := c.Prompter.Float64("Enter credit hours (>0): ", c.Limits.CreditMin, c.Limits.CreditMax)
		if err != nil {
			return err
		}
		sem.AddCourse(grade, credit)
	}
	c.Service.AddSemester(sem)
	return nil
}

// displayAll 按录入顺序输出每学期的课程与 GPA，最后是总 CGPA，统一两位小数
func (c *MenuController) displayAll() {
	for i, sem := range c.Service.Semesters() {
		fmt.Fprintf(c.Out, "\nSemester %d:\n", i+1)
		for j, course := range sem.Courses() {
			fmt.Fprintf(c.Out, "Course %d | Grade: %.2f | Credit: %.2f\n", j+1, course.Grade, course.Credit)
		}
		fmt.Fprintf(c.Out, "GPA: %.2f\n", sem.GPA())
	}
	fmt.Fprintf(c.Out, "\nFinal CGPA: %.2f\n", c.Service.CGPA())
}

func (c *MenuController) save() {
	if err := c.Service.Save(); err != nil {
		fmt.Fprintf(c.Out, "Error saving data: %v\n", err)
		return
	}
	fmt.Fprintln(c.Out, "Data saved successfully.")
}

func (c *MenuController) load() {
	if err := c.Service.Load(); err != nil {
		if errors.Is(err, util.ErrNoSavedData) {
			fmt.Fprintln(c.Out, "No saved data found.")
			return
		}
		fmt.Fprintf(c.Out, "Error loading data: %v\n", err)
		return
	}
	fmt.Fprintln(c.Out, "Data loaded successfully.")
}
