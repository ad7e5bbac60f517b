package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/yigit/schoolhub/internal/app/controllers"
	"github.com/yigit/schoolhub/internal/app/models"
	"github.com/yigit/schoolhub/internal/app/models/dto"
	"github.com/yigit/schoolhub/internal/middleware"
)

// SetupRouter configures all application routes. The paths are mounted at the
// root, without a version prefix, which is what the API's existing clients
// expect. Reads are open to both roles; writes require the manager role or a
// superuser.
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	sessionController *controllers.SessionController,
	classController *controllers.ClassController,
	roomController *controllers.RoomController,
	teacherController *controllers.TeacherController,
	studentController *controllers.StudentController,
	attendanceController *controllers.AttendanceController,
	activityController *controllers.ActivityController,
	authMiddleware *middleware.AuthMiddleware,
) {
	canWrite := authMiddleware.RoleRequired(models.RoleAdmin, models.RoleManager)

	// --- Public auth routes ---
	auth := router.Group("/auth")
	{
		auth.POST("/login", authController.Login)

		authProtected := auth.Group("")
		authProtected.Use(authMiddleware.JWTAuth())
		{
			authProtected.GET("/me", authController.GetProfile)
		}
	}

	// --- Authenticated routes ---
	authenticated := router.Group("")
	authenticated.Use(authMiddleware.JWTAuth())

	sessions := authenticated.Group("/sessions")
	{
		sessions.GET("/list", sessionController.ListSessions)
		sessions.GET("/:id", sessionController.GetSession)

		sessionsProtected := sessions.Group("")
		sessionsProtected.Use(canWrite)
		{
			sessionsProtected.POST("/create", sessionController.CreateSession)
			sessionsProtected.PATCH("/:id/update", sessionController.UpdateSession)
			sessionsProtected.PATCH("/:id/change-room", sessionController.ChangeRoom)
			sessionsProtected.PATCH("/:id/change-teacher", sessionController.ChangeTeacher)
			sessionsProtected.DELETE("/:id/delete", sessionController.DeleteSession)
		}
	}

	classes := authenticated.Group("/classes")
	{
		classes.GET("/list", classController.ListClasses)
		classes.GET("/:id", classController.GetClass)

		classesProtected := classes.Group("")
		classesProtected.Use(canWrite)
		{
			classesProtected.POST("/create", classController.CreateClass)
			classesProtected.PATCH("/:id/update", classController.UpdateClass)
			classesProtected.PATCH("/:id/change-capacity", classController.ChangeCapacity)
			classesProtected.PATCH("/:id/students/add", classController.AddStudents)
			classesProtected.PATCH("/:id/remove-student/:studentId", classController.RemoveStudent)
			// Kept as an alias for clients using the resource-shaped path
			classesProtected.DELETE("/:id/students/:studentId/remove", classController.RemoveStudent)
			classesProtected.DELETE("/:id/delete", classController.DeleteClass)
		}
	}

	rooms := authenticated.Group("/rooms")
	{
		rooms.GET("/list", roomController.ListRooms)
		rooms.GET("/:id", roomController.GetRoom)

		roomsProtected := rooms.Group("")
		roomsProtected.Use(canWrite)
		{
			roomsProtected.POST("/create", roomController.CreateRoom)
			roomsProtected.PATCH("/:id/update", roomController.UpdateRoom)
			roomsProtected.DELETE("/:id/delete", roomController.DeleteRoom)
		}
	}

	teachers := authenticated.Group("/teachers")
	{
		teachers.GET("/list", teacherController.ListTeachers)
		teachers.GET("/:id", teacherController.GetTeacher)

		teachersProtected := teachers.Group("")
		teachersProtected.Use(canWrite)
		{
			teachersProtected.POST("/create", teacherController.CreateTeacher)
			teachersProtected.PATCH("/:id/update", teacherController.UpdateTeacher)
			teachersProtected.DELETE("/:id/delete", teacherController.DeleteTeacher)
		}
	}

	students := authenticated.Group("/students")
	{
		students.GET("/list", studentController.ListStudents)
		students.GET("/:id", studentController.GetStudent)

		studentsProtected := students.Group("")
		studentsProtected.Use(canWrite)
		{
			studentsProtected.POST("/create", studentController.CreateStudent)
			studentsProtected.PATCH("/:id/update", studentController.UpdateStudent)
			studentsProtected.DELETE("/:id/delete", studentController.DeleteStudent)
		}
	}

	attendance := authenticated.Group("/attendance")
	{
		attendance.GET("/session/:id", attendanceController.GetSessionAttendance)
		attendance.GET("/student/:id", attendanceController.GetStudentAttendance)

		attendanceProtected := attendance.Group("")
		attendanceProtected.Use(canWrite)
		{
			attendanceProtected.POST("/create", attendanceController.RecordAttendance)
			attendanceProtected.DELETE("/:id/delete", attendanceController.DeleteAttendance)
		}
	}

	activity := authenticated.Group("/activity")
	{
		activity.GET("/list", activityController.ListActivity)
	}

	// Health check endpoint (public)
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.OK(dto.H{"status": "ok"}))
	})
}
