package snowflake

import "github.com/bwmarrin/snowflake"

var node *snowflake.Node

func init() {
	node, _ = snowflake.NewNode(1)
}

// GenID 进度记录、积分流水等主键
func GenID() uint64 {
	return uint64(node.Generate().Int64())
}
