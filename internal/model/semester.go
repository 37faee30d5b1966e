package model

// Semester 一个学期的课程集合，按录入顺序保存
type Semester struct {
	courses []Course
}

// AddCourse 追加一门课程。这里不做范围校验，范围校验由输入边界负责
func (s *Semester) AddCourse(grade, credit float64) {
	s.courses = append(s.courses, Course{Grade: grade, Credit: credit})
}

// GPA 计算本学期的加权平均绩点：Σ(成绩×学分)/Σ(学分)
// 总学分为 0 时返回 0，避免除零
func (s *Semester) GPA() float64 {
	var totalCredits, totalPoints float64
	for _, c := range s.courses {
		totalCredits += c.Credit
		totalPoints += c.Grade * c.Credit
	}
	if totalCredits == 0 {
		return 0
	}
	return totalPoints / totalCredits
}

// TotalCredits 本学期的学分总和
func (s *Semester) TotalCredits() float64 {
	var total float64
	for _, c := range s.courses {
		total += c.Credit
	}
	return total
}

// Courses 返回课程的只读视图，调用方不得修改
func (s *Semester) Courses() []Course {
	return s.courses
}
