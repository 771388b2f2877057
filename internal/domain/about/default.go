package about

// DefaultProfile is served whenever no revision is active or the store cannot
// be read. Each call returns a fresh value, so callers may modify it.
func DefaultProfile() *Profile {
	return &Profile{
		Content: Content{
			Name:           "박윤영",
			Title:          "풀스택 개발자를 꿈꾸는 컴퓨터공학도",
			School:         "한신대학교 컴퓨터공학과 4학년",
			Location:       "경기도",
			GithubURL:      "https://github.com/yun0-0514",
			GithubUsername: "@yun0-0514",
			NotionURL:      "https://www.notion.so/1bb41dfe9493806f83c7e98a60985aef",
			Email:          "parkyunyoung@hanmail.net",
			TechStacks: []TechStack{
				{
					Category: "Frontend",
					Skills:   []string{"React", "Next.js", "JavaScript", "TypeScript", "HTML5", "CSS3", "Tailwind CSS", "Bootstrap"},
				},
				{
					Category: "Backend",
					Skills:   []string{"Python", "Java", "Spring Framework", "Spring Boot", "Flask API", "RESTful API", "C언어", "Node.js"},
				},
				{
					Category: "Database & Cloud",
					Skills:   []string{"Supabase", "PostgreSQL", "MySQL", "MongoDB", "Firebase", "AWS", "Vercel"},
				},
				{
					Category: "AI/ML & Data",
					Skills:   []string{"TensorFlow", "PyTorch", "Scikit-learn", "Pandas", "NumPy", "Matplotlib", "Seaborn", "Jupyter"},
				},
				{
					Category: "Tools & Others",
					Skills:   []string{"Git", "GitHub", "Docker", "Linux", "VS Code", "IntelliJ IDEA", "Postman", "Figma"},
				},
			},
			Strengths: []Strength{
				{Title: "풀스택 개발 역량", Description: "프론트엔드부터 백엔드, 데이터베이스까지 전체적인 웹 개발 스택을 다룰 수 있습니다."},
				{Title: "빠른 학습 능력", Description: "새로운 기술과 프레임워크를 빠르게 습득하고 적용할 수 있습니다."},
				{Title: "문제 해결 능력", Description: "복잡한 문제를 논리적으로 분석하고 효율적인 솔루션을 찾아내는 능력을 갖추고 있습니다."},
				{Title: "협업 및 소통", Description: "팀 프로젝트에서 원활한 소통과 협업을 통해 목표를 달성하는 경험이 있습니다."},
			},
			Projects: []Project{
				{
					Title: "개인 블로그 플랫폼",
					Tech:  "Next.js 15 + Supabase + Clerk",
					Color: "blue",
					Features: []string{
						"서버 사이드 렌더링과 정적 생성 구현",
						"사용자 인증 및 권한 관리",
						"댓글 시스템 및 좋아요 기능",
						"반응형 UI/UX 디자인",
					},
				},
				{
					Title: "Spring Boot REST API",
					Tech:  "Java + Spring Boot + MySQL",
					Color: "green",
					Features: []string{
						"RESTful API 설계 및 구현",
						"JPA를 이용한 데이터베이스 연동",
						"JWT 기반 인증 시스템",
						"API 문서화 (Swagger)",
					},
				},
				{
					Title: "데이터 분석 프로젝트",
					Tech:  "Python + Pandas + Scikit-learn",
					Color: "purple",
					Features: []string{
						"공공데이터를 활용한 분석",
						"머신러닝 모델 구현 및 평가",
						"데이터 시각화 (Matplotlib, Seaborn)",
						"Jupyter Notebook 활용",
					},
				},
				{
					Title: "Flask API 서버",
					Tech:  "Python + Flask + SQLAlchemy",
					Color: "orange",
					Features: []string{
						"경량화된 웹 API 서버 구축",
						"SQLAlchemy ORM 활용",
						"CORS 설정 및 보안 처리",
						"Docker를 이용한 배포",
					},
				},
			},
			Education: "2021년 입학 - 현재 4학년 재학 중",
			EducationDetails: []string{
				"전공 과목: 자료구조, 알고리즘, 데이터베이스, 소프트웨어공학, 웹프로그래밍",
				"프로젝트: 팀 프로젝트를 통한 웹 애플리케이션 개발 경험",
				"인공지능 관련 과목 이수 및 머신러닝 프로젝트 수행",
			},
			ExperienceDetails: []string{
				"Next.js와 Supabase를 활용한 개인 블로그 개발 (현재 프로젝트)",
				"Python Flask를 활용한 RESTful API 개발 경험",
				"Java Spring Framework를 이용한 웹 애플리케이션 개발",
				"Python 머신러닝 라이브러리를 활용한 데이터 분석 프로젝트",
				"React를 활용한 반응형 웹 애플리케이션 개발",
			},
		},
	}
}
