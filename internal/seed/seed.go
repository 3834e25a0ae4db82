// Package seed holds the dataset written into an empty store on first read.
// It mirrors the pilot deployment's roster and two representative tasks, one
// already overdue and one recurring monthly report due soon.
package seed

import (
	"fmt"
	"time"

	"github.com/taskdesk/taskdesk/internal/notification"
	"github.com/taskdesk/taskdesk/internal/task"
	"github.com/taskdesk/taskdesk/internal/user"
)

func avatarURL(name, background string) string {
	return fmt.Sprintf("https://ui-avatars.com/api/?name=%s&background=%s&color=fff", name, background)
}

// DefaultUsers returns the initial accounts. Everyone starts with the default
// password and the first-login flag set.
func DefaultUsers() []*user.User {
	managers := []struct {
		id, username, fullName, avatarName, background string
	}{
		{"u1", "ldthang", "Lê Đình Thắng", "Le+Dinh+Thang", "ef4444"},
		{"u2", "lqtuan", "Lê Quốc Tuấn", "Le+Quoc+Tuan", "f97316"},
		{"u3", "nthao", "Nguyễn Thị Hảo", "Nguyen+Thi+Hao", "f97316"},
	}
	officers := []struct {
		id, username, fullName, avatarName string
	}{
		{"u4", "ptadao", "Phan Thị Anh Đào", "Phan+Thi+Anh+Dao"},
		{"u5", "nthuong", "Nguyễn Thị Hường", "Nguyen+Thi+Huong"},
		{"u6", "nqtrang", "Nguyễn Quỳnh Trang", "Nguyen+Quynh+Trang"},
		{"u7", "cphang", "Cao Phương Hằng", "Cao+Phuong+Hang"},
		{"u8", "nttsuong", "Nguyễn Thị Thu Sương", "Nguyen+Thi+Thu+Suong"},
		{"u9", "ndnguyen", "Nguyễn Đình Nguyên", "Nguyen+Dinh+Nguyen"},
		{"u10", "hhquynh", "Hoàng Hương Quỳnh", "Hoang+Huong+Quynh"},
		{"u11", "nklinh", "Nguyễn Khánh Linh", "Nguyen+Khanh+Linh"},
		{"u12", "hphai", "Hoàng Phi Hải", "Hoang+Phi+Hai"},
		{"u13", "nthue", "Nguyễn Thị Như Huế", "Nguyen+Thi+Nhu+Hue"},
		{"u14", "vvdhuy", "Văn Viết Đức Huy", "Van+Viet+Duc+Huy"},
		{"u15", "lqchung", "Lê Quang Chung", "Le+Quang+Chung"},
		{"u16", "dvtdat", "Dương Văn Tiến Đạt", "Duong+Van+Tien+Dat"},
	}

	users := make([]*user.User, 0, len(managers)+len(officers))
	for _, m := range managers {
		users = append(users, &user.User{
			ID:           m.id,
			Username:     m.username,
			Password:     user.DefaultPassword,
			IsFirstLogin: true,
			FullName:     m.fullName,
			Role:         user.RoleManager,
			AvatarURL:    avatarURL(m.avatarName, m.background),
		})
	}
	for _, o := range officers {
		users = append(users, &user.User{
			ID:           o.id,
			Username:     o.username,
			Password:     user.DefaultPassword,
			IsFirstLogin: true,
			FullName:     o.fullName,
			Role:         user.RoleOfficer,
			AvatarURL:    avatarURL(o.avatarName, "059669"),
		})
	}
	return users
}

// DefaultTasks returns the initial tasks relative to now.
func DefaultTasks(now time.Time) []*task.Task {
	return []*task.Task{
		{
			ID:               "t1",
			Title:            "V/v Rà soát quy hoạch phân khu B tại quận Liên Chiểu",
			Description:      "Thực hiện rà soát theo chỉ đạo của UBND TP. Báo cáo kết quả trước ngày 25.",
			Proposal:         "Đã liên hệ phòng TNMT nhưng chưa nhận được bản đồ mới. Đề xuất gia hạn thêm 2 ngày.",
			DispatchNumber:   "128/UBND-QLĐT",
			IssuingAuthority: "UBND Thành Phố",
			IssueDate:        "2024-05-15",
			AssigneeID:       "u4",
			CreatorID:        "u1",
			Recurring:        task.RecurrenceNone,
			Status:           task.StatusInProgress,
			Priority:         task.PriorityHigh,
			DueDate:          now.Add(-24 * time.Hour),
			CreatedAt:        now,
			SuggestedSteps: []string{
				"Thu thập hồ sơ quy hoạch cũ",
				"Khảo sát hiện trạng",
				"Lập báo cáo so sánh",
			},
		},
		{
			ID:               "t2",
			Title:            "Báo cáo số liệu đền bù GPMB định kỳ tháng",
			Description:      "Tổng hợp số liệu và báo cáo phòng Kế hoạch.",
			DispatchNumber:   "45/KH-TNMT",
			IssuingAuthority: "Sở TN&MT",
			IssueDate:        "2024-05-20",
			AssigneeID:       "u15",
			CreatorID:        "u2",
			Recurring:        task.RecurrenceMonthly,
			Status:           task.StatusPending,
			Priority:         task.PriorityMedium,
			DueDate:          now.Add(48 * time.Hour),
			CreatedAt:        now.Add(-100 * time.Second),
		},
	}
}

// DefaultNotifications returns the initial notifications relative to now.
func DefaultNotifications(now time.Time) []*notification.Notification {
	return []*notification.Notification{
		{
			ID:        "n1",
			UserID:    "u4",
			Title:     "Nhiệm vụ mới",
			Message:   "Bạn được giao nhiệm vụ: V/v Rà soát quy hoạch phân khu B",
			IsRead:    false,
			CreatedAt: now.Add(-time.Hour),
			Kind:      notification.KindTaskAssigned,
			TaskID:    "t1",
		},
		{
			ID:        "n2",
			UserID:    "u4",
			Title:     "Cảnh báo quá hạn",
			Message:   "Nhiệm vụ \"V/v Rà soát quy hoạch...\" đã quá hạn xử lý!",
			IsRead:    false,
			CreatedAt: now,
			Kind:      notification.KindDeadlineWarning,
			TaskID:    "t1",
		},
	}
}
