package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type HospitalInfo struct {
	Name    string `bson:"name" json:"name"`
	Address string `bson:"address" json:"address"`
	City    string `bson:"city" json:"city"`
}

type Doctor struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name           string             `bson:"name" json:"name"`
	Email          string             `bson:"email" json:"email"`
	Specialization string             `bson:"specialization" json:"specialization"`
	Fees           float64            `bson:"fees" json:"fees"`
	HospitalInfo   HospitalInfo       `bson:"hospitalInfo" json:"hospitalInfo"`
	ProfileImage   string             `bson:"profileImage,omitempty" json:"profileImage,omitempty"`
}
