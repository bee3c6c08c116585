package types

// PointRecord 每一条流水的细节
type PointRecord struct {
	ID          uint64 `json:"id"`           // 流水唯一ID
	ActivityKey string `json:"activity_key"` // 触发的活动
	Amount      int64  `json:"amount"`       // 入账数值
	SourceID    uint64 `json:"source_id"`    // 关联的进度记录
	Description string `json:"description"`  // 详细描述
	CreatedAt   string `json:"created_at"`   // 格式化时间: 2006-01-02 15:04:05
}

// ListPointsRecord 流水列表包装
type ListPointsRecord struct {
	Records    []PointRecord `json:"records"`     // 积分流水细节
	NextCursor uint64        `json:"next_cursor"` // 游标：用于下一页请求
	HasMore    bool          `json:"has_more"`    // 标记是否还有更多数据
}

// PointsAccount 账户概览, 余额为全部流水之和
type PointsAccount struct {
	Balance    int64 `json:"balance"`
	EntryCount int64 `json:"entry_count"`
}

type ListPointRecordsReq struct {
	Cursor uint64 `form:"cursor"`                                     // 分页游标 (ID)
	Limit  int    `form:"limit,default=10" binding:"omitempty,max=100"` // 每页数量
}
