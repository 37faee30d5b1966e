package model

// Transcript 一名学生的全部学期记录，进程生命周期内只有一个实例
type Transcript struct {
	semesters []Semester
}

// AddSemester 追加一个构建完成的学期，传值即转移所有权，调用方的副本随即作废
func (t *Transcript) AddSemester(sem Semester) {
	t.semesters = append(t.semesters, sem)
}

// CGPA 计算所有学期所有课程的加权平均绩点
// 与学期 GPA 同一公式，只是展开到全部课程；总学分为 0 时返回 0
func (t *Transcript) CGPA() float64 {
	var totalCredits, totalPoints float64
	for i := range t.semesters {
		for _, c := range t.semesters[i].Courses() {
			totalCredits += c.Credit
			totalPoints += c.Grade * c.Credit
		}
	}
	if totalCredits == 0 {
		return 0
	}
	return totalPoints / totalCredits
}

// Semesters 返回学期的只读视图
func (t *Transcript) Semesters() []Semester {
	return t.semesters
}

// Replace 用加载结果整体替换当前学期
func (t *Transcript) Replace(semesters []Semester) {
	t.semesters = semesters
}

// Clear 清空全部学期，加载失败后用于避免半加载状态
func (t *Transcript) Clear() {
	t.semesters = nil
}
