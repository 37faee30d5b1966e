package model

// Course 一门课程的成绩与学分
type Course struct {
	Grade  float64
	Credit float64
}
