package user

type Role string

const (
	RoleManager Role = "MANAGER"
	RoleOfficer Role = "OFFICER"
)

type User struct {
	ID           string `yaml:"id" json:"id"`
	Username     string `yaml:"username" json:"username"`
	Password     string `yaml:"password" json:"-"`
	IsFirstLogin bool   `yaml:"is_first_login" json:"isFirstLogin"`
	FullName     string `yaml:"full_name" json:"fullName"`
	Role         Role   `yaml:"role" json:"role"`
	AvatarURL    string `yaml:"avatar_url" json:"avatarUrl"`
}

func (u *User) IsManager() bool {
	return u.Role == RoleManager
}
