package mocks

import "mindcheck-service/internal/app/contracts"

var (
	_ contracts.RedisRepository                 = (*MockRedisRepository)(nil)
	_ contracts.SessionService                  = (*MockSessionService)(nil)
	_ contracts.Storage                         = (*MockStorage)(nil)
	_ contracts.NotificationPublisher           = (*MockNotificationPublisher)(nil)
	_ contracts.PatientSummarizer               = (*MockPatientSummarizer)(nil)
	_ contracts.UserRepository                  = (*MockUserRepository)(nil)
	_ contracts.AssessmentRepository            = (*MockAssessmentRepository)(nil)
	_ contracts.PreAssessmentQuestionRepository = (*MockPreAssessmentQuestionRepository)(nil)
	_ contracts.NotificationRepository          = (*MockNotificationRepository)(nil)
	_ contracts.AuthUsecase                     = (*MockAuthUsecase)(nil)
	_ contracts.UserUsecase                     = (*MockUserUsecase)(nil)
	_ contracts.AssessmentUsecase               = (*MockAssessmentUsecase)(nil)
	_ contracts.ScreeningUsecase                = (*MockScreeningUsecase)(nil)
	_ contracts.PreAssessmentUsecase            = (*MockPreAssessmentUsecase)(nil)
	_ contracts.NotificationUsecase             = (*MockNotificationUsecase)(nil)
	_ contracts.DoctorUsecase                   = (*MockDoctorUsecase)(nil)
)
