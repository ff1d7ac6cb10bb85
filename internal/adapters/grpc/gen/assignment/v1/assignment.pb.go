// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.10
// 	protoc        (unknown)
// source: assignment/v1/assignment.proto

package assignmentv1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	timestamppb "google.golang.org/protobuf/types/known/timestamppb"
	wrapperspb "google.golang.org/protobuf/types/known/wrapperspb"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type DelegationStatus int32

const (
	DelegationStatus_DELEGATION_STATUS_UNSPECIFIED DelegationStatus = 0
	DelegationStatus_DELEGATION_STATUS_PENDING     DelegationStatus = 1
	DelegationStatus_DELEGATION_STATUS_ACTIVE      DelegationStatus = 2
	DelegationStatus_DELEGATION_STATUS_EXPIRED     DelegationStatus = 3
	DelegationStatus_DELEGATION_STATUS_REVOKED     DelegationStatus = 4
)

// Enum value maps for DelegationStatus.
var (
	DelegationStatus_name = map[int32]string{
		0: "DELEGATION_STATUS_UNSPECIFIED",
		1: "DELEGATION_STATUS_PENDING",
		2: "DELEGATION_STATUS_ACTIVE",
		3: "DELEGATION_STATUS_EXPIRED",
		4: "DELEGATION_STATUS_REVOKED",
	}
	DelegationStatus_value = map[string]int32{
		"DELEGATION_STATUS_UNSPECIFIED": 0,
		"DELEGATION_STATUS_PENDING":     1,
		"DELEGATION_STATUS_ACTIVE":      2,
		"DELEGATION_STATUS_EXPIRED":     3,
		"DELEGATION_STATUS_REVOKED":     4,
	}
)

func (x DelegationStatus) Enum() *DelegationStatus {
	p := new(DelegationStatus)
	*p = x
	return p
}

func (x DelegationStatus) String() string {
	return protoimpl.X.EnumStringOf(x.Descriptor(), protoreflect.EnumNumber(x))
}

func (DelegationStatus) Descriptor() protoreflect.EnumDescriptor {
	return file_assignment_v1_assignment_proto_enumTypes[0].Descriptor()
}

func (DelegationStatus) Type() protoreflect.EnumType {
	return &file_assignment_v1_assignment_proto_enumTypes[0]
}

func (x DelegationStatus) Number() protoreflect.EnumNumber {
	return protoreflect.EnumNumber(x)
}

// Deprecated: Use DelegationStatus.Descriptor instead.
func (DelegationStatus) EnumDescriptor() ([]byte, []int) {
	return file_assignment_v1_assignment_proto_rawDescGZIP(), []int{0}
}

type TransferStatus int32

const (
	TransferStatus_TRANSFER_STATUS_UNSPECIFIED TransferStatus = 0
	TransferStatus_TRANSFER_STATUS_PENDING     TransferStatus = 1
	TransferStatus_TRANSFER_STATUS_APPROVED    TransferStatus = 2
	TransferStatus_TRANSFER_STATUS_REJECTED    TransferStatus = 3
	TransferStatus_TRANSFER_STATUS_COMPLETED   TransferStatus = 4
	TransferStatus_TRANSFER_STATUS_CANCELLED   TransferStatus = 5
)

// Enum value maps for TransferStatus.
var (
	TransferStatus_name = map[int32]string{
		0: "TRANSFER_STATUS_UNSPECIFIED",
		1: "TRANSFER_STATUS_PENDING",
		2: "TRANSFER_STATUS_APPROVED",
		3: "TRANSFER_STATUS_REJECTED",
		4: "TRANSFER_STATUS_COMPLETED",
		5: "TRANSFER_STATUS_CANCELLED",
	}
	TransferStatus_value = map[string]int32{
		"TRANSFER_STATUS_UNSPECIFIED": 0,
		"TRANSFER_STATUS_PENDING":     1,
		"TRANSFER_STATUS_APPROVED":    2,
		"TRANSFER_STATUS_REJECTED":    3,
		"TRANSFER_STATUS_COMPLETED":   4,
		"TRANSFER_STATUS_CANCELLED":   5,
	}
)

func (x TransferStatus) Enum() *TransferStatus {
	p := new(TransferStatus)
	*p = x
	return p
}

func (x TransferStatus) String() string {
	return protoimpl.X.EnumStringOf(x.Descriptor(), protoreflect.EnumNumber(x))
}

func (TransferStatus) Descriptor() protoreflect.EnumDescriptor {
	return file_assignment_v1_assignment_proto_enumTypes[1].Descriptor()
}

func (TransferStatus) Type() protoreflect.EnumType {
	return &file_assignment_v1_assignment_proto_enumTypes[1]
}

func (x TransferStatus) Number() protoreflect.EnumNumber {
	return protoreflect.EnumNumber(x)
}

// Deprecated: Use TransferStatus.Descriptor instead.
func (TransferStatus) EnumDescriptor() ([]byte, []int) {
	return file_assignment_v1_assignment_proto_rawDescGZIP(), []int{1}
}

type Delegation struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	Id             string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	EmployeeId     string                 `protobuf:"bytes,2,opt,name=employee_id,json=employeeId,proto3" json:"employee_id,omitempty"`
	FromStoreId    string                 `protobuf:"bytes,3,opt,name=from_store_id,json=fromStoreId,proto3" json:"from_store_id,omitempty"`
	FromZoneId     string                 `protobuf:"bytes,4,opt,name=from_zone_id,json=fromZoneId,proto3" json:"from_zone_id,omitempty"`
	ToStoreId      string                 `protobuf:"bytes,5,opt,name=to_store_id,json=toStoreId,proto3" json:"to_store_id,omitempty"`
	ToZoneId       string                 `protobuf:"bytes,6,opt,name=to_zone_id,json=toZoneId,proto3" json:"to_zone_id,omitempty"`
	DelegatedBy    string                 `protobuf:"bytes,7,opt,name=delegated_by,json=delegatedBy,proto3" json:"delegated_by,omitempty"`
	ValidFrom      string                 `protobuf:"bytes,8,opt,name=valid_from,json=validFrom,proto3" json:"valid_from,omitempty"`
	ValidUntil     string                 `protobuf:"bytes,9,opt,name=valid_until,json=validUntil,proto3" json:"valid_until,omitempty"`
	Status         DelegationStatus       `protobuf:"varint,10,opt,name=status,proto3,enum=assignment.v1.DelegationStatus" json:"status,omitempty"`
	AutoReturn     bool                   `protobuf:"varint,11,opt,name=auto_return,json=autoReturn,proto3" json:"auto_return,omitempty"`
	ExtensionCount int32                  `protobuf:"varint,12,opt,name=extension_count,json=extensionCount,proto3" json:"extension_count,omitempty"`
	CreatedAt      *timestamppb.Timestamp `protobuf:"bytes,13,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt      *timestamppb.Timestamp `protobuf:"bytes,14,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	// 応答時点の評価値。残り日数が警告しきい値を下回ると true。
	ExpiringSoon  bool `protobuf:"varint,15,opt,name=expiring_soon,json=expiringSoon,proto3" json:"expiring_soon,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Delegation) Reset() {
	*x = Delegation{}
	mi := &file_assignment_v1_assignment_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Delegation) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Delegation) ProtoMessage() {}

func (x *Delegation) ProtoReflect() protoreflect.Message {
	mi := &file_assignment_v1_assignment_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Delegation.ProtoReflect.Descriptor instead.
func (*Delegation) Descriptor() ([]byte, []int) {
	return file_assignment_v1_assignment_proto_rawDescGZIP(), []int{0}
}

func (x *Delegation) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Delegation) GetEmployeeId() string {
	if x != nil {
		return x.EmployeeId
	}
	return ""
}

func (x *Delegation) GetFromStoreId() string {
	if x != nil {
		return x.FromStoreId
	}
	return ""
}

func (x *Delegation) GetFromZoneId() string {
	if x != nil {
		return x.FromZoneId
	}
	return ""
}

func (x *Delegation) GetToStoreId() string {
	if x != nil {
		return x.ToStoreId
	}
	return ""
}

func (x *Delegation) GetToZoneId() string {
	if x != nil {
		return x.ToZoneId
	}
	return ""
}

func (x *Delegation) GetDelegatedBy() string {
	if x != nil {
		return x.DelegatedBy
	}
	return ""
}

func (x *Delegation) GetValidFrom() string {
	if x != nil {
		return x.ValidFrom
	}
	return ""
}

func (x *Delegation) GetValidUntil() string {
	if x != nil {
		return x.ValidUntil
	}
	return ""
}

func (x *Delegation) GetStatus() DelegationStatus {
	if x != nil {
		return x.Status
	}
	return DelegationStatus_DELEGATION_STATUS_UNSPECIFIED
}

func (x *Delegation) GetAutoReturn() bool {
	if x != nil {
		return x.AutoReturn
	}
	return false
}

func (x *Delegation) GetExtensionCount() int32 {
	if x != nil {
		return x.ExtensionCount
	}
	return 0
}

func (x *Delegation) GetCreatedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.CreatedAt
	}
	return nil
}

func (x *Delegation) GetUpdatedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.UpdatedAt
	}
	return nil
}

func (x *Delegation) GetExpiringSoon() bool {
	if x != nil {
		return x.ExpiringSoon
	}
	return false
}

type Transfer struct {
	state         protoimpl.MessageState  `protogen:"open.v1"`
	Id            string                  `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	EmployeeId    string                  `protobuf:"bytes,2,opt,name=employee_id,json=employeeId,proto3" json:"employee_id,omitempty"`
	FromStoreId   string                  `protobuf:"bytes,3,opt,name=from_store_id,json=fromStoreId,proto3" json:"from_store_id,omitempty"`
	FromZoneId    string                  `protobuf:"bytes,4,opt,name=from_zone_id,json=fromZoneId,proto3" json:"from_zone_id,omitempty"`
	ToStoreId     string                  `protobuf:"bytes,5,opt,name=to_store_id,json=toStoreId,proto3" json:"to_store_id,omitempty"`
	ToZoneId      string                  `protobuf:"bytes,6,opt,name=to_zone_id,json=toZoneId,proto3" json:"to_zone_id,omitempty"`
	InitiatedBy   string                  `protobuf:"bytes,7,opt,name=initiated_by,json=initiatedBy,proto3" json:"initiated_by,omitempty"`
	ApprovedBy    *wrapperspb.StringValue `protobuf:"bytes,8,opt,name=approved_by,json=approvedBy,proto3" json:"approved_by,omitempty"`
	TransferDate  string                  `protobuf:"bytes,9,opt,name=transfer_date,json=transferDate,proto3" json:"transfer_date,omitempty"`
	Status        TransferStatus          `protobuf:"varint,10,opt,name=status,proto3,enum=assignment.v1.TransferStatus" json:"status,omitempty"`
	CompletedAt   *timestamppb.Timestamp  `protobuf:"bytes,11,opt,name=completed_at,json=completedAt,proto3" json:"completed_at,omitempty"`
	CreatedAt     *timestamppb.Timestamp  `protobuf:"bytes,12,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt     *timestamppb.Timestamp  `protobuf:"bytes,13,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	Overdue       bool                    `protobuf:"varint,14,opt,name=overdue,proto3" json:"overdue,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Transfer) Reset() {
	*x = Transfer{}
	mi := &file_assignment_v1_assignment_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Transfer) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Transfer) ProtoMessage() {}

func (x *Transfer) ProtoReflect() protoreflect.Message {
	mi := &file_assignment_v1_assignment_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Transfer.ProtoReflect.Descriptor instead.
func (*Transfer) Descriptor() ([]byte, []int) {
	return file_assignment_v1_assignment_proto_rawDescGZIP(), []int{1}
}

func (x *Transfer) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Transfer) GetEmployeeId() string {
	if x != nil {
		return x.EmployeeId
	}
	return ""
}

func (x *Transfer) GetFromStoreId() string {
	if x != nil {
		return x.FromStoreId
	}
	return ""
}

func (x *Transfer) GetFromZoneId() string {
	if x != nil {
		return x.FromZoneId
	}
	return ""
}

func (x *Transfer) GetToStoreId() string {
	if x != nil {
		return x.ToStoreId
	}
	return ""
}

func (x *Transfer) GetToZoneId() string {
	if x != nil {
		return x.ToZoneId
	}
	return ""
}

func (x *Transfer) GetInitiatedBy() string {
	if x != nil {
		return x.InitiatedBy
	}
	return ""
}

func (x *Transfer) GetApprovedBy() *wrapperspb.StringValue {
	if x != nil {
		return x.ApprovedBy
	}
	return nil
}

func (x *Transfer) GetTransferDate() string {
	if x != nil {
		return x.TransferDate
	}
	return ""
}

func (x *Transfer) GetStatus() TransferStatus {
	if x != nil {
		return x.Status
	}
	return TransferStatus_TRANSFER_STATUS_UNSPECIFIED
}

func (x *Transfer) GetCompletedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.CompletedAt
	}
	return nil
}

func (x *Transfer) GetCreatedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.CreatedAt
	}
	return nil
}

func (x *Transfer) GetUpdatedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.UpdatedAt
	}
	return nil
}

func (x *Transfer) GetOverdue() bool {
	if x != nil {
		return x.Overdue
	}
	return false
}

type Employee struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	StoreId       string                 `protobuf:"bytes,2,opt,name=store_id,json=storeId,proto3" json:"store_id,omitempty"`
	ZoneId        string                 `protobuf:"bytes,3,opt,name=zone_id,json=zoneId,proto3" json:"zone_id,omitempty"`
	Status        string                 `protobuf:"bytes,4,opt,name=status,proto3" json:"status,omitempty"`
	CreatedAt     *timestamppb.Timestamp `protobuf:"bytes,5,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt     *timestamppb.Timestamp `protobuf:"bytes,6,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Employee) Reset() {
	*x = Employee{}
	mi := &file_assignment_v1_assignment_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Employee) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Employee) ProtoMessage() {}

func (x *Employee) ProtoReflect() protoreflect.Message {
	mi := &file_assignment_v1_assignment_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Employee.ProtoReflect.Descriptor instead.
func (*Employee) Descriptor() ([]byte, []int) {
	return file_assignment_v1_assignment_proto_rawDescGZIP(), []int{2}
}

func (x *Employee) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Employee) GetStoreId() string {
	if x != nil {
		return x.StoreId
	}
	return ""
}

func (x *Employee) GetZoneId() string {
	if x != nil {
		return x.ZoneId
	}
	return ""
}

func (x *Employee) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *Employee) GetCreatedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.CreatedAt
	}
	return nil
}

func (x *Employee) GetUpdatedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.UpdatedAt
	}
	return nil
}

type CreateDelegationRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ActorId       string                 `protobuf:"bytes,1,opt,name=actor_id,json=actorId,proto3" json:"actor_id,omitempty"`
	EmployeeId    string                 `protobuf:"bytes,2,opt,name=employee_id,json=employeeId,proto3" json:"employee_id,omitempty"`
	FromStoreId   string                 `protobuf:"bytes,3,opt,name=from_store_id,json=fromStoreId,proto3" json:"from_store_id,omitempty"`
	ToStoreId     string                 `protobuf:"bytes,4,opt,name=to_store_id,json=toStoreId,proto3" json:"to_store_id,omitempty"`
	ValidFrom     string                 `protobuf:"bytes,5,opt,name=valid_from,json=validFrom,proto3" json:"valid_from,omitempty"`
	ValidUntil    string                 `protobuf:"bytes,6,opt,name=valid_until,json=validUntil,proto3" json:"valid_until,omitempty"`
	AutoReturn    bool                   `protobuf:"varint,7,opt,name=auto_return,json=autoReturn,proto3" json:"auto_return,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateDelegationRequest) Reset() {
	*x = CreateDelegationRequest{}
	mi := &file_assignment_v1_assignment_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateDelegationRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateDelegationRequest) ProtoMessage() {}

func (x *CreateDelegationRequest) ProtoReflect() protoreflect.Message {
	mi := &file_assignment_v1_assignment_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateDelegationRequest.ProtoReflect.Descriptor instead.
func (*CreateDelegationRequest) Descriptor() ([]byte, []int) {
	return file_assignment_v1_assignment_proto_rawDescGZIP(), []int{3}
}

func (x *CreateDelegationRequest) GetActorId() string {
	if x != nil {
		return x.ActorId
	}
	return ""
}

func (x *CreateDelegationRequest) GetEmployeeId() string {
	if x != nil {
		return x.EmployeeId
	}
	return ""
}

func (x *CreateDelegationRequest) GetFromStoreId() string {
	if x != nil {
		return x.FromStoreId
	}
	return ""
}

func (x *CreateDelegationRequest) GetToStoreId() string {
	if x != nil {
		return x.ToStoreId
	}
	return ""
}

func (x *CreateDelegationRequest) GetValidFrom() string {
	if x != nil {
		return x.ValidFrom
	}
	return ""
}

func (x *CreateDelegationRequest) GetValidUntil() string {
	if x != nil {
		return x.ValidUntil
	}
	return ""
}

func (x *CreateDelegationRequest) GetAutoReturn() bool {
	if x != nil {
		return x.AutoReturn
	}
	return false
}

type CreateDelegationResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Delegation    *Delegation            `protobuf:"bytes,1,opt,name=delegation,proto3" json:"delegation,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateDelegationResponse) Reset() {
	*x = CreateDelegationResponse{}
	mi := &file_assignment_v1_assignment_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateDelegationResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateDelegationResponse) ProtoMessage() {}

func (x *CreateDelegationResponse) ProtoReflect() protoreflect.Message {
	mi := &file_assignment_v1_assignment_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateDelegationResponse.ProtoReflect.Descriptor instead.
func (*CreateDelegationResponse) Descriptor() ([]byte, []int) {
	return file_assignment_v1_assignment_proto_rawDescGZIP(), []int{4}
}

func (x *CreateDelegationResponse) GetDelegation() *Delegation {
	if x != nil {
		return x.Delegation
	}
	return nil
}

type RevokeDelegationRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	ActorId       string                 `protobuf:"bytes,2,opt,name=actor_id,json=actorId,proto3" json:"actor_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RevokeDelegationRequest) Reset() {
	*x = RevokeDelegationRequest{}
	mi := &file_assignment_v1_assignment_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RevokeDelegationRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RevokeDelegationRequest) ProtoMessage() {}

func (x *RevokeDelegationRequest) ProtoReflect() protoreflect.Message {
	mi := &file_assignment_v1_assignment_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RevokeDelegationRequest.ProtoReflect.Descriptor instead.
func (*RevokeDelegationRequest) Descriptor() ([]byte, []int) {
	return file_assignment_v1_assignment_proto_rawDescGZIP(), []int{5}
}

func (x *RevokeDelegationRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *RevokeDelegationRequest) GetActorId() string {
	if x != nil {
		return x.ActorId
	}
	return ""
}

type RevokeDelegationResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Delegation    *Delegation            `protobuf:"bytes,1,opt,name=delegation,proto3" json:"delegation,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RevokeDelegationResponse) Reset() {
	*x = RevokeDelegationResponse{}
	mi := &file_assignment_v1_assignment_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RevokeDelegationResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RevokeDelegationResponse) ProtoMessage() {}

func (x *RevokeDelegationResponse) ProtoReflect() protoreflect.Message {
	mi := &file_assignment_v1_assignment_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RevokeDelegationResponse.ProtoReflect.Descriptor instead.
func (*RevokeDelegationResponse) Descriptor() ([]byte, []int) {
	return file_assignment_v1_assignment_proto_rawDescGZIP(), []int{6}
}

func (x *RevokeDelegationResponse) GetDelegation() *Delegation {
	if x != nil {
		return x.Delegation
	}
	return nil
}

type ExtendDelegationRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	ActorId       string                 `protobuf:"bytes,2,opt,name=actor_id,json=actorId,proto3" json:"actor_id,omitempty"`
	NewValidUntil string                 `protobuf:"bytes,3,opt,name=new_valid_until,json=newValidUntil,proto3" json:"new_valid_until,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExtendDelegationRequest) Reset() {
	*x = ExtendDelegationRequest{}
	mi := &file_assignment_v1_assignment_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExtendDelegationRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExtendDelegationRequest) ProtoMessage() {}

func (x *ExtendDelegationRequest) ProtoReflect() protoreflect.Message {
	mi := &file_assignment_v1_assignment_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExtendDelegationRequest.ProtoReflect.Descriptor instead.
func (*ExtendDelegationRequest) Descriptor() ([]byte, []int) {
	return file_assignment_v1_assignment_proto_rawDescGZIP(), []int{7}
}

func (x *ExtendDelegationRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *ExtendDelegationRequest) GetActorId() string {
	if x != nil {
		return x.ActorId
	}
	return ""
}

func (x *ExtendDelegationRequest) GetNewValidUntil() string {
	if x != nil {
		return x.NewValidUntil
	}
	return ""
}

type ExtendDelegationResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Delegation    *Delegation            `protobuf:"bytes,1,opt,name=delegation,proto3" json:"delegation,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExtendDelegationResponse) Reset() {
	*x = ExtendDelegationResponse{}
	mi := &file_assignment_v1_assignment_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExtendDelegationResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExtendDelegationResponse) ProtoMessage() {}

func (x *ExtendDelegationResponse) ProtoReflect() protoreflect.Message {
	mi := &file_assignment_v1_assignment_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExtendDelegationResponse.ProtoReflect.Descriptor instead.
func (*ExtendDelegationResponse) Descriptor() ([]byte, []int) {
	return file_assignment_v1_assignment_proto_rawDescGZIP(), []int{8}
}

func (x *ExtendDelegationResponse) GetDelegation() *Delegation {
	if x != nil {
		return x.Delegation
	}
	return nil
}

type GetDelegationRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetDelegationRequest) Reset() {
	*x = GetDelegationRequest{}
	mi := &file_assignment_v1_assignment_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetDelegationRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetDelegationRequest) ProtoMessage() {}

func (x *GetDelegationRequest) ProtoReflect() protoreflect.Message {
	mi := &file_assignment_v1_assignment_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetDelegationRequest.ProtoReflect.Descriptor instead.
func (*GetDelegationRequest) Descriptor() ([]byte, []int) {
	return file_assignment_v1_assignment_proto_rawDescGZIP(), []int{9}
}

func (x *GetDelegationRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

type GetDelegationResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Delegation    *Delegation            `protobuf:"bytes,1,opt,name=delegation,proto3" json:"delegation,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetDelegationResponse) Reset() {
	*x = GetDelegationResponse{}
	mi := &file_assignment_v1_assignment_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetDelegationResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetDelegationResponse) ProtoMessage() {}

func (x *GetDelegationResponse) ProtoReflect() protoreflect.Message {
	mi := &file_assignment_v1_assignment_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetDelegationResponse.ProtoReflect.Descriptor instead.
func (*GetDelegationResponse) Descriptor() ([]byte, []int) {
	return file_assignment_v1_assignment_proto_rawDescGZIP(), []int{10}
}

func (x *GetDelegationResponse) GetDelegation() *Delegation {
	if x != nil {
		return x.Delegation
	}
	return nil
}

type ListDelegationsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	EmployeeId    string                 `protobuf:"bytes,1,opt,name=employee_id,json=employeeId,proto3" json:"employee_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListDelegationsRequest) Reset() {
	*x = ListDelegationsRequest{}
	mi := &file_assignment_v1_assignment_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListDelegationsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListDelegationsRequest) ProtoMessage() {}

func (x *ListDelegationsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_assignment_v1_assignment_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListDelegationsRequest.ProtoReflect.Descriptor instead.
func (*ListDelegationsRequest) Descriptor() ([]byte, []int) {
	return file_assignment_v1_assignment_proto_rawDescGZIP(), []int{11}
}

func (x *ListDelegationsRequest) GetEmployeeId() string {
	if x != nil {
		return x.EmployeeId
	}
	return ""
}

type ListDelegationsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Delegations   []*Delegation          `protobuf:"bytes,1,rep,name=delegations,proto3" json:"delegations,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListDelegationsResponse) Reset() {
	*x = ListDelegationsResponse{}
	mi := &file_assignment_v1_assignment_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListDelegationsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListDelegationsResponse) ProtoMessage() {}

func (x *ListDelegationsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_assignment_v1_assignment_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListDelegationsResponse.ProtoReflect.Descriptor instead.
func (*ListDelegationsResponse) Descriptor() ([]byte, []int) {
	return file_assignment_v1_assignment_proto_rawDescGZIP(), []int{12}
}

func (x *ListDelegationsResponse) GetDelegations() []*Delegation {
	if x != nil {
		return x.Delegations
	}
	return nil
}

type GetActiveDelegationRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	EmployeeId    string                 `protobuf:"bytes,1,opt,name=employee_id,json=employeeId,proto3" json:"employee_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetActiveDelegationRequest) Reset() {
	*x = GetActiveDelegationRequest{}
	mi := &file_assignment_v1_assignment_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetActiveDelegationRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetActiveDelegationRequest) ProtoMessage() {}

func (x *GetActiveDelegationRequest) ProtoReflect() protoreflect.Message {
	mi := &file_assignment_v1_assignment_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetActiveDelegationRequest.ProtoReflect.Descriptor instead.
func (*GetActiveDelegationRequest) Descriptor() ([]byte, []int) {
	return file_assignment_v1_assignment_proto_rawDescGZIP(), []int{13}
}

func (x *GetActiveDelegationRequest) GetEmployeeId() string {
	if x != nil {
		return x.EmployeeId
	}
	return ""
}

type GetActiveDelegationResponse struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// 現在効力を持つ委任がない場合は未設定。
	Delegation    *Delegation `protobuf:"bytes,1,opt,name=delegation,proto3" json:"delegation,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetActiveDelegationResponse) Reset() {
	*x = GetActiveDelegationResponse{}
	mi := &file_assignment_v1_assignment_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetActiveDelegationResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetActiveDelegationResponse) ProtoMessage() {}

func (x *GetActiveDelegationResponse) ProtoReflect() protoreflect.Message {
	mi := &file_assignment_v1_assignment_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetActiveDelegationResponse.ProtoReflect.Descriptor instead.
func (*GetActiveDelegationResponse) Descriptor() ([]byte, []int) {
	return file_assignment_v1_assignment_proto_rawDescGZIP(), []int{14}
}

func (x *GetActiveDelegationResponse) GetDelegation() *Delegation {
	if x != nil {
		return x.Delegation
	}
	return nil
}

type IsDateRestrictedRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	EmployeeId    string                 `protobuf:"bytes,1,opt,name=employee_id,json=employeeId,proto3" json:"employee_id,omitempty"`
	Date          string                 `protobuf:"bytes,2,opt,name=date,proto3" json:"date,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *IsDateRestrictedRequest) Reset() {
	*x = IsDateRestrictedRequest{}
	mi := &file_assignment_v1_assignment_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *IsDateRestrictedRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*IsDateRestrictedRequest) ProtoMessage() {}

func (x *IsDateRestrictedRequest) ProtoReflect() protoreflect.Message {
	mi := &file_assignment_v1_assignment_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use IsDateRestrictedRequest.ProtoReflect.Descriptor instead.
func (*IsDateRestrictedRequest) Descriptor() ([]byte, []int) {
	return file_assignment_v1_assignment_proto_rawDescGZIP(), []int{15}
}

func (x *IsDateRestrictedRequest) GetEmployeeId() string {
	if x != nil {
		return x.EmployeeId
	}
	return ""
}

func (x *IsDateRestrictedRequest) GetDate() string {
	if x != nil {
		return x.Date
	}
	return ""
}

type IsDateRestrictedResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Restricted    bool                   `protobuf:"varint,1,opt,name=restricted,proto3" json:"restricted,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *IsDateRestrictedResponse) Reset() {
	*x = IsDateRestrictedResponse{}
	mi := &file_assignment_v1_assignment_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *IsDateRestrictedResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*IsDateRestrictedResponse) ProtoMessage() {}

func (x *IsDateRestrictedResponse) ProtoReflect() protoreflect.Message {
	mi := &file_assignment_v1_assignment_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use IsDateRestrictedResponse.ProtoReflect.Descriptor instead.
func (*IsDateRestrictedResponse) Descriptor() ([]byte, []int) {
	return file_assignment_v1_assignment_proto_rawDescGZIP(), []int{16}
}

func (x *IsDateRestrictedResponse) GetRestricted() bool {
	if x != nil {
		return x.Restricted
	}
	return false
}

type CreateTransferRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ActorId       string                 `protobuf:"bytes,1,opt,name=actor_id,json=actorId,proto3" json:"actor_id,omitempty"`
	EmployeeId    string                 `protobuf:"bytes,2,opt,name=employee_id,json=employeeId,proto3" json:"employee_id,omitempty"`
	FromStoreId   string                 `protobuf:"bytes,3,opt,name=from_store_id,json=fromStoreId,proto3" json:"from_store_id,omitempty"`
	ToStoreId     string                 `protobuf:"bytes,4,opt,name=to_store_id,json=toStoreId,proto3" json:"to_store_id,omitempty"`
	TransferDate  string                 `protobuf:"bytes,5,opt,name=transfer_date,json=transferDate,proto3" json:"transfer_date,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateTransferRequest) Reset() {
	*x = CreateTransferRequest{}
	mi := &file_assignment_v1_assignment_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateTransferRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateTransferRequest) ProtoMessage() {}

func (x *CreateTransferRequest) ProtoReflect() protoreflect.Message {
	mi := &file_assignment_v1_assignment_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateTransferRequest.ProtoReflect.Descriptor instead.
func (*CreateTransferRequest) Descriptor() ([]byte, []int) {
	return file_assignment_v1_assignment_proto_rawDescGZIP(), []int{17}
}

func (x *CreateTransferRequest) GetActorId() string {
	if x != nil {
		return x.ActorId
	}
	return ""
}

func (x *CreateTransferRequest) GetEmployeeId() string {
	if x != nil {
		return x.EmployeeId
	}
	return ""
}

func (x *CreateTransferRequest) GetFromStoreId() string {
	if x != nil {
		return x.FromStoreId
	}
	return ""
}

func (x *CreateTransferRequest) GetToStoreId() string {
	if x != nil {
		return x.ToStoreId
	}
	return ""
}

func (x *CreateTransferRequest) GetTransferDate() string {
	if x != nil {
		return x.TransferDate
	}
	return ""
}

type CreateTransferResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Transfer      *Transfer              `protobuf:"bytes,1,opt,name=transfer,proto3" json:"transfer,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateTransferResponse) Reset() {
	*x = CreateTransferResponse{}
	mi := &file_assignment_v1_assignment_proto_msgTypes[18]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateTransferResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateTransferResponse) ProtoMessage() {}

func (x *CreateTransferResponse) ProtoReflect() protoreflect.Message {
	mi := &file_assignment_v1_assignment_proto_msgTypes[18]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateTransferResponse.ProtoReflect.Descriptor instead.
func (*CreateTransferResponse) Descriptor() ([]byte, []int) {
	return file_assignment_v1_assignment_proto_rawDescGZIP(), []int{18}
}

func (x *CreateTransferResponse) GetTransfer() *Transfer {
	if x != nil {
		return x.Transfer
	}
	return nil
}

type ApproveTransferRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	ActorId       string                 `protobuf:"bytes,2,opt,name=actor_id,json=actorId,proto3" json:"actor_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ApproveTransferRequest) Reset() {
	*x = ApproveTransferRequest{}
	mi := &file_assignment_v1_assignment_proto_msgTypes[19]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ApproveTransferRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ApproveTransferRequest) ProtoMessage() {}

func (x *ApproveTransferRequest) ProtoReflect() protoreflect.Message {
	mi := &file_assignment_v1_assignment_proto_msgTypes[19]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ApproveTransferRequest.ProtoReflect.Descriptor instead.
func (*ApproveTransferRequest) Descriptor() ([]byte, []int) {
	return file_assignment_v1_assignment_proto_rawDescGZIP(), []int{19}
}

func (x *ApproveTransferRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *ApproveTransferRequest) GetActorId() string {
	if x != nil {
		return x.ActorId
	}
	return ""
}

type ApproveTransferResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Transfer      *Transfer              `protobuf:"bytes,1,opt,name=transfer,proto3" json:"transfer,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ApproveTransferResponse) Reset() {
	*x = ApproveTransferResponse{}
	mi := &file_assignment_v1_assignment_proto_msgTypes[20]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ApproveTransferResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ApproveTransferResponse) ProtoMessage() {}

func (x *ApproveTransferResponse) ProtoReflect() protoreflect.Message {
	mi := &file_assignment_v1_assignment_proto_msgTypes[20]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ApproveTransferResponse.ProtoReflect.Descriptor instead.
func (*ApproveTransferResponse) Descriptor() ([]byte, []int) {
	return file_assignment_v1_assignment_proto_rawDescGZIP(), []int{20}
}

func (x *ApproveTransferResponse) GetTransfer() *Transfer {
	if x != nil {
		return x.Transfer
	}
	return nil
}

type RejectTransferRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	ActorId       string                 `protobuf:"bytes,2,opt,name=actor_id,json=actorId,proto3" json:"actor_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RejectTransferRequest) Reset() {
	*x = RejectTransferRequest{}
	mi := &file_assignment_v1_assignment_proto_msgTypes[21]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RejectTransferRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RejectTransferRequest) ProtoMessage() {}

func (x *RejectTransferRequest) ProtoReflect() protoreflect.Message {
	mi := &file_assignment_v1_assignment_proto_msgTypes[21]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RejectTransferRequest.ProtoReflect.Descriptor instead.
func (*RejectTransferRequest) Descriptor() ([]byte, []int) {
	return file_assignment_v1_assignment_proto_rawDescGZIP(), []int{21}
}

func (x *RejectTransferRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *RejectTransferRequest) GetActorId() string {
	if x != nil {
		return x.ActorId
	}
	return ""
}

type RejectTransferResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Transfer      *Transfer              `protobuf:"bytes,1,opt,name=transfer,proto3" json:"transfer,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RejectTransferResponse) Reset() {
	*x = RejectTransferResponse{}
	mi := &file_assignment_v1_assignment_proto_msgTypes[22]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RejectTransferResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RejectTransferResponse) ProtoMessage() {}

func (x *RejectTransferResponse) ProtoReflect() protoreflect.Message {
	mi := &file_assignment_v1_assignment_proto_msgTypes[22]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RejectTransferResponse.ProtoReflect.Descriptor instead.
func (*RejectTransferResponse) Descriptor() ([]byte, []int) {
	return file_assignment_v1_assignment_proto_rawDescGZIP(), []int{22}
}

func (x *RejectTransferResponse) GetTransfer() *Transfer {
	if x != nil {
		return x.Transfer
	}
	return nil
}

type CancelTransferRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	ActorId       string                 `protobuf:"bytes,2,opt,name=actor_id,json=actorId,proto3" json:"actor_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CancelTransferRequest) Reset() {
	*x = CancelTransferRequest{}
	mi := &file_assignment_v1_assignment_proto_msgTypes[23]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CancelTransferRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CancelTransferRequest) ProtoMessage() {}

func (x *CancelTransferRequest) ProtoReflect() protoreflect.Message {
	mi := &file_assignment_v1_assignment_proto_msgTypes[23]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CancelTransferRequest.ProtoReflect.Descriptor instead.
func (*CancelTransferRequest) Descriptor() ([]byte, []int) {
	return file_assignment_v1_assignment_proto_rawDescGZIP(), []int{23}
}

func (x *CancelTransferRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *CancelTransferRequest) GetActorId() string {
	if x != nil {
		return x.ActorId
	}
	return ""
}

type CancelTransferResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Transfer      *Transfer              `protobuf:"bytes,1,opt,name=transfer,proto3" json:"transfer,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CancelTransferResponse) Reset() {
	*x = CancelTransferResponse{}
	mi := &file_assignment_v1_assignment_proto_msgTypes[24]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CancelTransferResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CancelTransferResponse) ProtoMessage() {}

func (x *CancelTransferResponse) ProtoReflect() protoreflect.Message {
	mi := &file_assignment_v1_assignment_proto_msgTypes[24]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CancelTransferResponse.ProtoReflect.Descriptor instead.
func (*CancelTransferResponse) Descriptor() ([]byte, []int) {
	return file_assignment_v1_assignment_proto_rawDescGZIP(), []int{24}
}

func (x *CancelTransferResponse) GetTransfer() *Transfer {
	if x != nil {
		return x.Transfer
	}
	return nil
}

type CompleteTransferRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CompleteTransferRequest) Reset() {
	*x = CompleteTransferRequest{}
	mi := &file_assignment_v1_assignment_proto_msgTypes[25]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CompleteTransferRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CompleteTransferRequest) ProtoMessage() {}

func (x *CompleteTransferRequest) ProtoReflect() protoreflect.Message {
	mi := &file_assignment_v1_assignment_proto_msgTypes[25]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CompleteTransferRequest.ProtoReflect.Descriptor instead.
func (*CompleteTransferRequest) Descriptor() ([]byte, []int) {
	return file_assignment_v1_assignment_proto_rawDescGZIP(), []int{25}
}

func (x *CompleteTransferRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

type CompleteTransferResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Transfer      *Transfer              `protobuf:"bytes,1,opt,name=transfer,proto3" json:"transfer,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CompleteTransferResponse) Reset() {
	*x = CompleteTransferResponse{}
	mi := &file_assignment_v1_assignment_proto_msgTypes[26]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CompleteTransferResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CompleteTransferResponse) ProtoMessage() {}

func (x *CompleteTransferResponse) ProtoReflect() protoreflect.Message {
	mi := &file_assignment_v1_assignment_proto_msgTypes[26]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CompleteTransferResponse.ProtoReflect.Descriptor instead.
func (*CompleteTransferResponse) Descriptor() ([]byte, []int) {
	return file_assignment_v1_assignment_proto_rawDescGZIP(), []int{26}
}

func (x *CompleteTransferResponse) GetTransfer() *Transfer {
	if x != nil {
		return x.Transfer
	}
	return nil
}

type GetTransferRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetTransferRequest) Reset() {
	*x = GetTransferRequest{}
	mi := &file_assignment_v1_assignment_proto_msgTypes[27]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetTransferRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetTransferRequest) ProtoMessage() {}

func (x *GetTransferRequest) ProtoReflect() protoreflect.Message {
	mi := &file_assignment_v1_assignment_proto_msgTypes[27]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetTransferRequest.ProtoReflect.Descriptor instead.
func (*GetTransferRequest) Descriptor() ([]byte, []int) {
	return file_assignment_v1_assignment_proto_rawDescGZIP(), []int{27}
}

func (x *GetTransferRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

type GetTransferResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Transfer      *Transfer              `protobuf:"bytes,1,opt,name=transfer,proto3" json:"transfer,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetTransferResponse) Reset() {
	*x = GetTransferResponse{}
	mi := &file_assignment_v1_assignment_proto_msgTypes[28]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetTransferResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetTransferResponse) ProtoMessage() {}

func (x *GetTransferResponse) ProtoReflect() protoreflect.Message {
	mi := &file_assignment_v1_assignment_proto_msgTypes[28]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetTransferResponse.ProtoReflect.Descriptor instead.
func (*GetTransferResponse) Descriptor() ([]byte, []int) {
	return file_assignment_v1_assignment_proto_rawDescGZIP(), []int{28}
}

func (x *GetTransferResponse) GetTransfer() *Transfer {
	if x != nil {
		return x.Transfer
	}
	return nil
}

type ListTransfersRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	EmployeeId    string                 `protobuf:"bytes,1,opt,name=employee_id,json=employeeId,proto3" json:"employee_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListTransfersRequest) Reset() {
	*x = ListTransfersRequest{}
	mi := &file_assignment_v1_assignment_proto_msgTypes[29]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListTransfersRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListTransfersRequest) ProtoMessage() {}

func (x *ListTransfersRequest) ProtoReflect() protoreflect.Message {
	mi := &file_assignment_v1_assignment_proto_msgTypes[29]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListTransfersRequest.ProtoReflect.Descriptor instead.
func (*ListTransfersRequest) Descriptor() ([]byte, []int) {
	return file_assignment_v1_assignment_proto_rawDescGZIP(), []int{29}
}

func (x *ListTransfersRequest) GetEmployeeId() string {
	if x != nil {
		return x.EmployeeId
	}
	return ""
}

type ListTransfersResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Transfers     []*Transfer            `protobuf:"bytes,1,rep,name=transfers,proto3" json:"transfers,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListTransfersResponse) Reset() {
	*x = ListTransfersResponse{}
	mi := &file_assignment_v1_assignment_proto_msgTypes[30]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListTransfersResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListTransfersResponse) ProtoMessage() {}

func (x *ListTransfersResponse) ProtoReflect() protoreflect.Message {
	mi := &file_assignment_v1_assignment_proto_msgTypes[30]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListTransfersResponse.ProtoReflect.Descriptor instead.
func (*ListTransfersResponse) Descriptor() ([]byte, []int) {
	return file_assignment_v1_assignment_proto_rawDescGZIP(), []int{30}
}

func (x *ListTransfersResponse) GetTransfers() []*Transfer {
	if x != nil {
		return x.Transfers
	}
	return nil
}

type GetEmployeeRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetEmployeeRequest) Reset() {
	*x = GetEmployeeRequest{}
	mi := &file_assignment_v1_assignment_proto_msgTypes[31]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetEmployeeRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetEmployeeRequest) ProtoMessage() {}

func (x *GetEmployeeRequest) ProtoReflect() protoreflect.Message {
	mi := &file_assignment_v1_assignment_proto_msgTypes[31]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetEmployeeRequest.ProtoReflect.Descriptor instead.
func (*GetEmployeeRequest) Descriptor() ([]byte, []int) {
	return file_assignment_v1_assignment_proto_rawDescGZIP(), []int{31}
}

func (x *GetEmployeeRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

type GetEmployeeResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Employee      *Employee              `protobuf:"bytes,1,opt,name=employee,proto3" json:"employee,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetEmployeeResponse) Reset() {
	*x = GetEmployeeResponse{}
	mi := &file_assignment_v1_assignment_proto_msgTypes[32]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetEmployeeResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetEmployeeResponse) ProtoMessage() {}

func (x *GetEmployeeResponse) ProtoReflect() protoreflect.Message {
	mi := &file_assignment_v1_assignment_proto_msgTypes[32]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetEmployeeResponse.ProtoReflect.Descriptor instead.
func (*GetEmployeeResponse) Descriptor() ([]byte, []int) {
	return file_assignment_v1_assignment_proto_rawDescGZIP(), []int{32}
}

func (x *GetEmployeeResponse) GetEmployee() *Employee {
	if x != nil {
		return x.Employee
	}
	return nil
}

type CorrectEmployeeStoreRequest struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	ActorId         string                 `protobuf:"bytes,1,opt,name=actor_id,json=actorId,proto3" json:"actor_id,omitempty"`
	EmployeeId      string                 `protobuf:"bytes,2,opt,name=employee_id,json=employeeId,proto3" json:"employee_id,omitempty"`
	ExpectedStoreId string                 `protobuf:"bytes,3,opt,name=expected_store_id,json=expectedStoreId,proto3" json:"expected_store_id,omitempty"`
	NewStoreId      string                 `protobuf:"bytes,4,opt,name=new_store_id,json=newStoreId,proto3" json:"new_store_id,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *CorrectEmployeeStoreRequest) Reset() {
	*x = CorrectEmployeeStoreRequest{}
	mi := &file_assignment_v1_assignment_proto_msgTypes[33]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CorrectEmployeeStoreRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CorrectEmployeeStoreRequest) ProtoMessage() {}

func (x *CorrectEmployeeStoreRequest) ProtoReflect() protoreflect.Message {
	mi := &file_assignment_v1_assignment_proto_msgTypes[33]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CorrectEmployeeStoreRequest.ProtoReflect.Descriptor instead.
func (*CorrectEmployeeStoreRequest) Descriptor() ([]byte, []int) {
	return file_assignment_v1_assignment_proto_rawDescGZIP(), []int{33}
}

func (x *CorrectEmployeeStoreRequest) GetActorId() string {
	if x != nil {
		return x.ActorId
	}
	return ""
}

func (x *CorrectEmployeeStoreRequest) GetEmployeeId() string {
	if x != nil {
		return x.EmployeeId
	}
	return ""
}

func (x *CorrectEmployeeStoreRequest) GetExpectedStoreId() string {
	if x != nil {
		return x.ExpectedStoreId
	}
	return ""
}

func (x *CorrectEmployeeStoreRequest) GetNewStoreId() string {
	if x != nil {
		return x.NewStoreId
	}
	return ""
}

type CorrectEmployeeStoreResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Employee      *Employee              `protobuf:"bytes,1,opt,name=employee,proto3" json:"employee,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CorrectEmployeeStoreResponse) Reset() {
	*x = CorrectEmployeeStoreResponse{}
	mi := &file_assignment_v1_assignment_proto_msgTypes[34]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CorrectEmployeeStoreResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CorrectEmployeeStoreResponse) ProtoMessage() {}

func (x *CorrectEmployeeStoreResponse) ProtoReflect() protoreflect.Message {
	mi := &file_assignment_v1_assignment_proto_msgTypes[34]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CorrectEmployeeStoreResponse.ProtoReflect.Descriptor instead.
func (*CorrectEmployeeStoreResponse) Descriptor() ([]byte, []int) {
	return file_assignment_v1_assignment_proto_rawDescGZIP(), []int{34}
}

func (x *CorrectEmployeeStoreResponse) GetEmployee() *Employee {
	if x != nil {
		return x.Employee
	}
	return nil
}

var File_assignment_v1_assignment_proto protoreflect.FileDescriptor

const file_assignment_v1_assignment_proto_rawDesc = "" +
	"\n" +
	"\x1eassignment/v1/assignment.proto\x12\rassignment.v1\x1a\x1fgoogle/protobuf/timestamp.proto\x1a\x1egoogle/protobuf/wrappers.proto\"\xc2\x04\n" +
	"\n" +
	"Delegation\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1f\n" +
	"\vemployee_id\x18\x02 \x01(\tR\n" +
	"employeeId\x12\"\n" +
	"\rfrom_store_id\x18\x03 \x01(\tR\vfromStoreId\x12 \n" +
	"\ffrom_zone_id\x18\x04 \x01(\tR\n" +
	"fromZoneId\x12\x1e\n" +
	"\vto_store_id\x18\x05 \x01(\tR\ttoStoreId\x12\x1c\n" +
	"\n" +
	"to_zone_id\x18\x06 \x01(\tR\btoZoneId\x12!\n" +
	"\fdelegated_by\x18\a \x01(\tR\vdelegatedBy\x12\x1d\n" +
	"\n" +
	"valid_from\x18\b \x01(\tR\tvalidFrom\x12\x1f\n" +
	"\vvalid_until\x18\t \x01(\tR\n" +
	"validUntil\x127\n" +
	"\x06status\x18\n" +
	" \x01(\x0e2\x1f.assignment.v1.DelegationStatusR\x06status\x12\x1f\n" +
	"\vauto_return\x18\v \x01(\bR\n" +
	"autoReturn\x12'\n" +
	"\x0fextension_count\x18\f \x01(\x05R\x0eextensionCount\x129\n" +
	"\n" +
	"created_at\x18\r \x01(\v2\x1a.google.protobuf.TimestampR\tcreatedAt\x129\n" +
	"\n" +
	"updated_at\x18\x0e \x01(\v2\x1a.google.protobuf.TimestampR\tupdatedAt\x12#\n" +
	"\rexpiring_soon\x18\x0f \x01(\bR\fexpiringSoon\"\xcc\x04\n" +
	"\bTransfer\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1f\n" +
	"\vemployee_id\x18\x02 \x01(\tR\n" +
	"employeeId\x12\"\n" +
	"\rfrom_store_id\x18\x03 \x01(\tR\vfromStoreId\x12 \n" +
	"\ffrom_zone_id\x18\x04 \x01(\tR\n" +
	"fromZoneId\x12\x1e\n" +
	"\vto_store_id\x18\x05 \x01(\tR\ttoStoreId\x12\x1c\n" +
	"\n" +
	"to_zone_id\x18\x06 \x01(\tR\btoZoneId\x12!\n" +
	"\finitiated_by\x18\a \x01(\tR\vinitiatedBy\x12=\n" +
	"\vapproved_by\x18\b \x01(\v2\x1c.google.protobuf.StringValueR\n" +
	"approvedBy\x12#\n" +
	"\rtransfer_date\x18\t \x01(\tR\ftransferDate\x125\n" +
	"\x06status\x18\n" +
	" \x01(\x0e2\x1d.assignment.v1.TransferStatusR\x06status\x12=\n" +
	"\fcompleted_at\x18\v \x01(\v2\x1a.google.protobuf.TimestampR\vcompletedAt\x129\n" +
	"\n" +
	"created_at\x18\f \x01(\v2\x1a.google.protobuf.TimestampR\tcreatedAt\x129\n" +
	"\n" +
	"updated_at\x18\r \x01(\v2\x1a.google.protobuf.TimestampR\tupdatedAt\x12\x18\n" +
	"\aoverdue\x18\x0e \x01(\bR\aoverdue\"\xdc\x01\n" +
	"\bEmployee\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x19\n" +
	"\bstore_id\x18\x02 \x01(\tR\astoreId\x12\x17\n" +
	"\azone_id\x18\x03 \x01(\tR\x06zoneId\x12\x16\n" +
	"\x06status\x18\x04 \x01(\tR\x06status\x129\n" +
	"\n" +
	"created_at\x18\x05 \x01(\v2\x1a.google.protobuf.TimestampR\tcreatedAt\x129\n" +
	"\n" +
	"updated_at\x18\x06 \x01(\v2\x1a.google.protobuf.TimestampR\tupdatedAt\"\xfa\x01\n" +
	"\x17CreateDelegationRequest\x12\x19\n" +
	"\bactor_id\x18\x01 \x01(\tR\aactorId\x12\x1f\n" +
	"\vemployee_id\x18\x02 \x01(\tR\n" +
	"employeeId\x12\"\n" +
	"\rfrom_store_id\x18\x03 \x01(\tR\vfromStoreId\x12\x1e\n" +
	"\vto_store_id\x18\x04 \x01(\tR\ttoStoreId\x12\x1d\n" +
	"\n" +
	"valid_from\x18\x05 \x01(\tR\tvalidFrom\x12\x1f\n" +
	"\vvalid_until\x18\x06 \x01(\tR\n" +
	"validUntil\x12\x1f\n" +
	"\vauto_return\x18\a \x01(\bR\n" +
	"autoReturn\"U\n" +
	"\x18CreateDelegationResponse\x129\n" +
	"\n" +
	"delegation\x18\x01 \x01(\v2\x19.assignment.v1.DelegationR\n" +
	"delegation\"D\n" +
	"\x17RevokeDelegationRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x19\n" +
	"\bactor_id\x18\x02 \x01(\tR\aactorId\"U\n" +
	"\x18RevokeDelegationResponse\x129\n" +
	"\n" +
	"delegation\x18\x01 \x01(\v2\x19.assignment.v1.DelegationR\n" +
	"delegation\"l\n" +
	"\x17ExtendDelegationRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x19\n" +
	"\bactor_id\x18\x02 \x01(\tR\aactorId\x12&\n" +
	"\x0fnew_valid_until\x18\x03 \x01(\tR\rnewValidUntil\"U\n" +
	"\x18ExtendDelegationResponse\x129\n" +
	"\n" +
	"delegation\x18\x01 \x01(\v2\x19.assignment.v1.DelegationR\n" +
	"delegation\"&\n" +
	"\x14GetDelegationRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\"R\n" +
	"\x15GetDelegationResponse\x129\n" +
	"\n" +
	"delegation\x18\x01 \x01(\v2\x19.assignment.v1.DelegationR\n" +
	"delegation\"9\n" +
	"\x16ListDelegationsRequest\x12\x1f\n" +
	"\vemployee_id\x18\x01 \x01(\tR\n" +
	"employeeId\"V\n" +
	"\x17ListDelegationsResponse\x12;\n" +
	"\vdelegations\x18\x01 \x03(\v2\x19.assignment.v1.DelegationR\vdelegations\"=\n" +
	"\x1aGetActiveDelegationRequest\x12\x1f\n" +
	"\vemployee_id\x18\x01 \x01(\tR\n" +
	"employeeId\"X\n" +
	"\x1bGetActiveDelegationResponse\x129\n" +
	"\n" +
	"delegation\x18\x01 \x01(\v2\x19.assignment.v1.DelegationR\n" +
	"delegation\"N\n" +
	"\x17IsDateRestrictedRequest\x12\x1f\n" +
	"\vemployee_id\x18\x01 \x01(\tR\n" +
	"employeeId\x12\x12\n" +
	"\x04date\x18\x02 \x01(\tR\x04date\":\n" +
	"\x18IsDateRestrictedResponse\x12\x1e\n" +
	"\n" +
	"restricted\x18\x01 \x01(\bR\n" +
	"restricted\"\xbc\x01\n" +
	"\x15CreateTransferRequest\x12\x19\n" +
	"\bactor_id\x18\x01 \x01(\tR\aactorId\x12\x1f\n" +
	"\vemployee_id\x18\x02 \x01(\tR\n" +
	"employeeId\x12\"\n" +
	"\rfrom_store_id\x18\x03 \x01(\tR\vfromStoreId\x12\x1e\n" +
	"\vto_store_id\x18\x04 \x01(\tR\ttoStoreId\x12#\n" +
	"\rtransfer_date\x18\x05 \x01(\tR\ftransferDate\"M\n" +
	"\x16CreateTransferResponse\x123\n" +
	"\btransfer\x18\x01 \x01(\v2\x17.assignment.v1.TransferR\btransfer\"C\n" +
	"\x16ApproveTransferRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x19\n" +
	"\bactor_id\x18\x02 \x01(\tR\aactorId\"N\n" +
	"\x17ApproveTransferResponse\x123\n" +
	"\btransfer\x18\x01 \x01(\v2\x17.assignment.v1.TransferR\btransfer\"B\n" +
	"\x15RejectTransferRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x19\n" +
	"\bactor_id\x18\x02 \x01(\tR\aactorId\"M\n" +
	"\x16RejectTransferResponse\x123\n" +
	"\btransfer\x18\x01 \x01(\v2\x17.assignment.v1.TransferR\btransfer\"B\n" +
	"\x15CancelTransferRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x19\n" +
	"\bactor_id\x18\x02 \x01(\tR\aactorId\"M\n" +
	"\x16CancelTransferResponse\x123\n" +
	"\btransfer\x18\x01 \x01(\v2\x17.assignment.v1.TransferR\btransfer\")\n" +
	"\x17CompleteTransferRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\"O\n" +
	"\x18CompleteTransferResponse\x123\n" +
	"\btransfer\x18\x01 \x01(\v2\x17.assignment.v1.TransferR\btransfer\"$\n" +
	"\x12GetTransferRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\"J\n" +
	"\x13GetTransferResponse\x123\n" +
	"\btransfer\x18\x01 \x01(\v2\x17.assignment.v1.TransferR\btransfer\"7\n" +
	"\x14ListTransfersRequest\x12\x1f\n" +
	"\vemployee_id\x18\x01 \x01(\tR\n" +
	"employeeId\"N\n" +
	"\x15ListTransfersResponse\x125\n" +
	"\ttransfers\x18\x01 \x03(\v2\x17.assignment.v1.TransferR\ttransfers\"$\n" +
	"\x12GetEmployeeRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\"J\n" +
	"\x13GetEmployeeResponse\x123\n" +
	"\bemployee\x18\x01 \x01(\v2\x17.assignment.v1.EmployeeR\bemployee\"\xa7\x01\n" +
	"\x1bCorrectEmployeeStoreRequest\x12\x19\n" +
	"\bactor_id\x18\x01 \x01(\tR\aactorId\x12\x1f\n" +
	"\vemployee_id\x18\x02 \x01(\tR\n" +
	"employeeId\x12*\n" +
	"\x11expected_store_id\x18\x03 \x01(\tR\x0fexpectedStoreId\x12 \n" +
	"\fnew_store_id\x18\x04 \x01(\tR\n" +
	"newStoreId\"S\n" +
	"\x1cCorrectEmployeeStoreResponse\x123\n" +
	"\bemployee\x18\x01 \x01(\v2\x17.assignment.v1.EmployeeR\bemployee*\xb0\x01\n" +
	"\x10DelegationStatus\x12!\n" +
	"\x1dDELEGATION_STATUS_UNSPECIFIED\x10\x00\x12\x1d\n" +
	"\x19DELEGATION_STATUS_PENDING\x10\x01\x12\x1c\n" +
	"\x18DELEGATION_STATUS_ACTIVE\x10\x02\x12\x1d\n" +
	"\x19DELEGATION_STATUS_EXPIRED\x10\x03\x12\x1d\n" +
	"\x19DELEGATION_STATUS_REVOKED\x10\x04*\xc8\x01\n" +
	"\x0eTransferStatus\x12\x1f\n" +
	"\x1bTRANSFER_STATUS_UNSPECIFIED\x10\x00\x12\x1b\n" +
	"\x17TRANSFER_STATUS_PENDING\x10\x01\x12\x1c\n" +
	"\x18TRANSFER_STATUS_APPROVED\x10\x02\x12\x1c\n" +
	"\x18TRANSFER_STATUS_REJECTED\x10\x03\x12\x1d\n" +
	"\x19TRANSFER_STATUS_COMPLETED\x10\x04\x12\x1d\n" +
	"\x19TRANSFER_STATUS_CANCELLED\x10\x052\xd3\x05\n" +
	"\x11DelegationService\x12c\n" +
	"\x10CreateDelegation\x12&.assignment.v1.CreateDelegationRequest\x1a'.assignment.v1.CreateDelegationResponse\x12c\n" +
	"\x10RevokeDelegation\x12&.assignment.v1.RevokeDelegationRequest\x1a'.assignment.v1.RevokeDelegationResponse\x12c\n" +
	"\x10ExtendDelegation\x12&.assignment.v1.ExtendDelegationRequest\x1a'.assignment.v1.ExtendDelegationResponse\x12Z\n" +
	"\rGetDelegation\x12#.assignment.v1.GetDelegationRequest\x1a$.assignment.v1.GetDelegationResponse\x12`\n" +
	"\x0fListDelegations\x12%.assignment.v1.ListDelegationsRequest\x1a&.assignment.v1.ListDelegationsResponse\x12l\n" +
	"\x13GetActiveDelegation\x12).assignment.v1.GetActiveDelegationRequest\x1a*.assignment.v1.GetActiveDelegationResponse\x12c\n" +
	"\x10IsDateRestricted\x12&.assignment.v1.IsDateRestrictedRequest\x1a'.assignment.v1.IsDateRestrictedResponse2\xa7\x05\n" +
	"\x0fTransferService\x12]\n" +
	"\x0eCreateTransfer\x12$.assignment.v1.CreateTransferRequest\x1a%.assignment.v1.CreateTransferResponse\x12`\n" +
	"\x0fApproveTransfer\x12%.assignment.v1.ApproveTransferRequest\x1a&.assignment.v1.ApproveTransferResponse\x12]\n" +
	"\x0eRejectTransfer\x12$.assignment.v1.RejectTransferRequest\x1a%.assignment.v1.RejectTransferResponse\x12]\n" +
	"\x0eCancelTransfer\x12$.assignment.v1.CancelTransferRequest\x1a%.assignment.v1.CancelTransferResponse\x12c\n" +
	"\x10CompleteTransfer\x12&.assignment.v1.CompleteTransferRequest\x1a'.assignment.v1.CompleteTransferResponse\x12T\n" +
	"\vGetTransfer\x12!.assignment.v1.GetTransferRequest\x1a\".assignment.v1.GetTransferResponse\x12Z\n" +
	"\rListTransfers\x12#.assignment.v1.ListTransfersRequest\x1a$.assignment.v1.ListTransfersResponse2\xd9\x01\n" +
	"\x10DirectoryService\x12T\n" +
	"\vGetEmployee\x12!.assignment.v1.GetEmployeeRequest\x1a\".assignment.v1.GetEmployeeResponse\x12o\n" +
	"\x14CorrectEmployeeStore\x12*.assignment.v1.CorrectEmployeeStoreRequest\x1a+.assignment.v1.CorrectEmployeeStoreResponseBiZggithub.com/ogurasousui/assignment-grpc-clean-arch/internal/adapters/grpc/gen/assignment/v1;assignmentv1b\x06proto3"

var (
	file_assignment_v1_assignment_proto_rawDescOnce sync.Once
	file_assignment_v1_assignment_proto_rawDescData []byte
)

func file_assignment_v1_assignment_proto_rawDescGZIP() []byte {
	file_assignment_v1_assignment_proto_rawDescOnce.Do(func() {
		file_assignment_v1_assignment_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_assignment_v1_assignment_proto_rawDesc), len(file_assignment_v1_assignment_proto_rawDesc)))
	})
	return file_assignment_v1_assignment_proto_rawDescData
}

var file_assignment_v1_assignment_proto_enumTypes = make([]protoimpl.EnumInfo, 2)
var file_assignment_v1_assignment_proto_msgTypes = make([]protoimpl.MessageInfo, 35)
var file_assignment_v1_assignment_proto_goTypes = []any{
	(DelegationStatus)(0),                // 0: assignment.v1.DelegationStatus
	(TransferStatus)(0),                  // 1: assignment.v1.TransferStatus
	(*Delegation)(nil),                   // 2: assignment.v1.Delegation
	(*Transfer)(nil),                     // 3: assignment.v1.Transfer
	(*Employee)(nil),                     // 4: assignment.v1.Employee
	(*CreateDelegationRequest)(nil),      // 5: assignment.v1.CreateDelegationRequest
	(*CreateDelegationResponse)(nil),     // 6: assignment.v1.CreateDelegationResponse
	(*RevokeDelegationRequest)(nil),      // 7: assignment.v1.RevokeDelegationRequest
	(*RevokeDelegationResponse)(nil),     // 8: assignment.v1.RevokeDelegationResponse
	(*ExtendDelegationRequest)(nil),      // 9: assignment.v1.ExtendDelegationRequest
	(*ExtendDelegationResponse)(nil),     // 10: assignment.v1.ExtendDelegationResponse
	(*GetDelegationRequest)(nil),         // 11: assignment.v1.GetDelegationRequest
	(*GetDelegationResponse)(nil),        // 12: assignment.v1.GetDelegationResponse
	(*ListDelegationsRequest)(nil),       // 13: assignment.v1.ListDelegationsRequest
	(*ListDelegationsResponse)(nil),      // 14: assignment.v1.ListDelegationsResponse
	(*GetActiveDelegationRequest)(nil),   // 15: assignment.v1.GetActiveDelegationRequest
	(*GetActiveDelegationResponse)(nil),  // 16: assignment.v1.GetActiveDelegationResponse
	(*IsDateRestrictedRequest)(nil),      // 17: assignment.v1.IsDateRestrictedRequest
	(*IsDateRestrictedResponse)(nil),     // 18: assignment.v1.IsDateRestrictedResponse
	(*CreateTransferRequest)(nil),        // 19: assignment.v1.CreateTransferRequest
	(*CreateTransferResponse)(nil),       // 20: assignment.v1.CreateTransferResponse
	(*ApproveTransferRequest)(nil),       // 21: assignment.v1.ApproveTransferRequest
	(*ApproveTransferResponse)(nil),      // 22: assignment.v1.ApproveTransferResponse
	(*RejectTransferRequest)(nil),        // 23: assignment.v1.RejectTransferRequest
	(*RejectTransferResponse)(nil),       // 24: assignment.v1.RejectTransferResponse
	(*CancelTransferRequest)(nil),        // 25: assignment.v1.CancelTransferRequest
	(*CancelTransferResponse)(nil),       // 26: assignment.v1.CancelTransferResponse
	(*CompleteTransferRequest)(nil),      // 27: assignment.v1.CompleteTransferRequest
	(*CompleteTransferResponse)(nil),     // 28: assignment.v1.CompleteTransferResponse
	(*GetTransferRequest)(nil),           // 29: assignment.v1.GetTransferRequest
	(*GetTransferResponse)(nil),          // 30: assignment.v1.GetTransferResponse
	(*ListTransfersRequest)(nil),         // 31: assignment.v1.ListTransfersRequest
	(*ListTransfersResponse)(nil),        // 32: assignment.v1.ListTransfersResponse
	(*GetEmployeeRequest)(nil),           // 33: assignment.v1.GetEmployeeRequest
	(*GetEmployeeResponse)(nil),          // 34: assignment.v1.GetEmployeeResponse
	(*CorrectEmployeeStoreRequest)(nil),  // 35: assignment.v1.CorrectEmployeeStoreRequest
	(*CorrectEmployeeStoreResponse)(nil), // 36: assignment.v1.CorrectEmployeeStoreResponse
	(*timestamppb.Timestamp)(nil),        // 37: google.protobuf.Timestamp
	(*wrapperspb.StringValue)(nil),       // 38: google.protobuf.StringValue
}
var file_assignment_v1_assignment_proto_depIdxs = []int32{
	0,  // 0: assignment.v1.Delegation.status:type_name -> assignment.v1.DelegationStatus
	37, // 1: assignment.v1.Delegation.created_at:type_name -> google.protobuf.Timestamp
	37, // 2: assignment.v1.Delegation.updated_at:type_name -> google.protobuf.Timestamp
	38, // 3: assignment.v1.Transfer.approved_by:type_name -> google.protobuf.StringValue
	1,  // 4: assignment.v1.Transfer.status:type_name -> assignment.v1.TransferStatus
	37, // 5: assignment.v1.Transfer.completed_at:type_name -> google.protobuf.Timestamp
	37, // 6: assignment.v1.Transfer.created_at:type_name -> google.protobuf.Timestamp
	37, // 7: assignment.v1.Transfer.updated_at:type_name -> google.protobuf.Timestamp
	37, // 8: assignment.v1.Employee.created_at:type_name -> google.protobuf.Timestamp
	37, // 9: assignment.v1.Employee.updated_at:type_name -> google.protobuf.Timestamp
	2,  // 10: assignment.v1.CreateDelegationResponse.delegation:type_name -> assignment.v1.Delegation
	2,  // 11: assignment.v1.RevokeDelegationResponse.delegation:type_name -> assignment.v1.Delegation
	2,  // 12: assignment.v1.ExtendDelegationResponse.delegation:type_name -> assignment.v1.Delegation
	2,  // 13: assignment.v1.GetDelegationResponse.delegation:type_name -> assignment.v1.Delegation
	2,  // 14: assignment.v1.ListDelegationsResponse.delegations:type_name -> assignment.v1.Delegation
	2,  // 15: assignment.v1.GetActiveDelegationResponse.delegation:type_name -> assignment.v1.Delegation
	3,  // 16: assignment.v1.CreateTransferResponse.transfer:type_name -> assignment.v1.Transfer
	3,  // 17: assignment.v1.ApproveTransferResponse.transfer:type_name -> assignment.v1.Transfer
	3,  // 18: assignment.v1.RejectTransferResponse.transfer:type_name -> assignment.v1.Transfer
	3,  // 19: assignment.v1.CancelTransferResponse.transfer:type_name -> assignment.v1.Transfer
	3,  // 20: assignment.v1.CompleteTransferResponse.transfer:type_name -> assignment.v1.Transfer
	3,  // 21: assignment.v1.GetTransferResponse.transfer:type_name -> assignment.v1.Transfer
	3,  // 22: assignment.v1.ListTransfersResponse.transfers:type_name -> assignment.v1.Transfer
	4,  // 23: assignment.v1.GetEmployeeResponse.employee:type_name -> assignment.v1.Employee
	4,  // 24: assignment.v1.CorrectEmployeeStoreResponse.employee:type_name -> assignment.v1.Employee
	5,  // 25: assignment.v1.DelegationService.CreateDelegation:input_type -> assignment.v1.CreateDelegationRequest
	7,  // 26: assignment.v1.DelegationService.RevokeDelegation:input_type -> assignment.v1.RevokeDelegationRequest
	9,  // 27: assignment.v1.DelegationService.ExtendDelegation:input_type -> assignment.v1.ExtendDelegationRequest
	11, // 28: assignment.v1.DelegationService.GetDelegation:input_type -> assignment.v1.GetDelegationRequest
	13, // 29: assignment.v1.DelegationService.ListDelegations:input_type -> assignment.v1.ListDelegationsRequest
	15, // 30: assignment.v1.DelegationService.GetActiveDelegation:input_type -> assignment.v1.GetActiveDelegationRequest
	17, // 31: assignment.v1.DelegationService.IsDateRestricted:input_type -> assignment.v1.IsDateRestrictedRequest
	19, // 32: assignment.v1.TransferService.CreateTransfer:input_type -> assignment.v1.CreateTransferRequest
	21, // 33: assignment.v1.TransferService.ApproveTransfer:input_type -> assignment.v1.ApproveTransferRequest
	23, // 34: assignment.v1.TransferService.RejectTransfer:input_type -> assignment.v1.RejectTransferRequest
	25, // 35: assignment.v1.TransferService.CancelTransfer:input_type -> assignment.v1.CancelTransferRequest
	27, // 36: assignment.v1.TransferService.CompleteTransfer:input_type -> assignment.v1.CompleteTransferRequest
	29, // 37: assignment.v1.TransferService.GetTransfer:input_type -> assignment.v1.GetTransferRequest
	31, // 38: assignment.v1.TransferService.ListTransfers:input_type -> assignment.v1.ListTransfersRequest
	33, // 39: assignment.v1.DirectoryService.GetEmployee:input_type -> assignment.v1.GetEmployeeRequest
	35, // 40: assignment.v1.DirectoryService.CorrectEmployeeStore:input_type -> assignment.v1.CorrectEmployeeStoreRequest
	6,  // 41: assignment.v1.DelegationService.CreateDelegation:output_type -> assignment.v1.CreateDelegationResponse
	8,  // 42: assignment.v1.DelegationService.RevokeDelegation:output_type -> assignment.v1.RevokeDelegationResponse
	10, // 43: assignment.v1.DelegationService.ExtendDelegation:output_type -> assignment.v1.ExtendDelegationResponse
	12, // 44: assignment.v1.DelegationService.GetDelegation:output_type -> assignment.v1.GetDelegationResponse
	14, // 45: assignment.v1.DelegationService.ListDelegations:output_type -> assignment.v1.ListDelegationsResponse
	16, // 46: assignment.v1.DelegationService.GetActiveDelegation:output_type -> assignment.v1.GetActiveDelegationResponse
	18, // 47: assignment.v1.DelegationService.IsDateRestricted:output_type -> assignment.v1.IsDateRestrictedResponse
	20, // 48: assignment.v1.TransferService.CreateTransfer:output_type -> assignment.v1.CreateTransferResponse
	22, // 49: assignment.v1.TransferService.ApproveTransfer:output_type -> assignment.v1.ApproveTransferResponse
	24, // 50: assignment.v1.TransferService.RejectTransfer:output_type -> assignment.v1.RejectTransferResponse
	26, // 51: assignment.v1.TransferService.CancelTransfer:output_type -> assignment.v1.CancelTransferResponse
	28, // 52: assignment.v1.TransferService.CompleteTransfer:output_type -> assignment.v1.CompleteTransferResponse
	30, // 53: assignment.v1.TransferService.GetTransfer:output_type -> assignment.v1.GetTransferResponse
	32, // 54: assignment.v1.TransferService.ListTransfers:output_type -> assignment.v1.ListTransfersResponse
	34, // 55: assignment.v1.DirectoryService.GetEmployee:output_type -> assignment.v1.GetEmployeeResponse
	36, // 56: assignment.v1.DirectoryService.CorrectEmployeeStore:output_type -> assignment.v1.CorrectEmployeeStoreResponse
	41, // [41:57] is the sub-list for method output_type
	25, // [25:41] is the sub-list for method input_type
	25, // [25:25] is the sub-list for extension type_name
	25, // [25:25] is the sub-list for extension extendee
	0,  // [0:25] is the sub-list for field type_name
}

func init() { file_assignment_v1_assignment_proto_init() }
func file_assignment_v1_assignment_proto_init() {
	if File_assignment_v1_assignment_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_assignment_v1_assignment_proto_rawDesc), len(file_assignment_v1_assignment_proto_rawDesc)),
			NumEnums:      2,
			NumMessages:   35,
			NumExtensions: 0,
			NumServices:   3,
		},
		GoTypes:           file_assignment_v1_assignment_proto_goTypes,
		DependencyIndexes: file_assignment_v1_assignment_proto_depIdxs,
		EnumInfos:         file_assignment_v1_assignment_proto_enumTypes,
		MessageInfos:      file_assignment_v1_assignment_proto_msgTypes,
	}.Build()
	File_assignment_v1_assignment_proto = out.File
	file_assignment_v1_assignment_proto_goTypes = nil
	file_assignment_v1_assignment_proto_depIdxs = nil
}
