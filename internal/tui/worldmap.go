package tui

// worldLand is a 120x60 equirectangular land mask of the world,
// row 0 at 90N, '#' marks land. Cells are sampled at their center by
// landAt; the mask resolution, not the grid size, bounds accuracy.
var worldLand = [...]string{
	"                                                                                                                        ",
	"                                                                                                                        ",
	"                                                                                                                        ",
	"                             # ####### #################                                    #                           ",
	"                       #    #   ### #################            ###                                                    ",
	"                      ###  ## ####       ############ #                        ##         ########        #####         ",
	"                  ## ###   #  ### ##      ###########                         #    #### ################   ###          ",
	"      ######## ###### #### # #  #  ###     #########              #######        # ## ##################################",
	" ### ###########################    ####   #####      #          ####### ###############################################",
	"      ########################       ##    ####                #### ####################################################",
	"      ### # #################      ##        #                ##### # ##########################################  ##    ",
	"                ##############     #####                   #     #  #######################################      ##     ",
	"                 ################ #######                # #   ###########################################      ##      ",
	"                  ########################                 ################################################             ",
	"                    ###################  ##                ################################################             ",
	"                   ################### #                    ##########  ####  ############################              ",
	"                   ##################                    ##### ##  ###    ### ##########################                ",
	"                   #################                     ###       # ######## ######################  #    #            ",
	"                    ###############                       #  ###       ##############################  #  #             ",
	"                     #############                        ######        #############################                   ",
	"                       ######## #                        ############################################                   ",
	"                      # ####     #                      ##################### #######################                   ",
	"                       # ###      #                    ################# ######    #################                    ",
	"                         ###  #   #                    ################## ######     ####  #####                        ",
	"                          #####   # #                  ################## #####      ###    ####                        ",
	"                             ####                      ################### ###       ##      ####   #                   ",
	"                               #    #                  ####################           #      # ##                       ",
	"                                #  #####                #####################         #      # #     ##                 ",
	"                                   ######                #### ###############          #      #    #                    ",
	"                                   ########                     ############                 ##   ##                    ",
	"                                  #########                     ###########                   #  ####                   ",
	"                                  #############                 ##########                    ##### #     ##            ",
	"                                 ################                ########                                  ## #         ",
	"                                  ###############                #########                         ## #    # #          ",
	"                                   #############                 #########                                              ",
	"                                   ############                  #########  #                         # ##  #           ",
	"                                     ##########                 #########  ##                        ########           ",
	"                                     ##########                  #######   ##                      ###########     #    ",
	"                                     ########                    #######   #                      #############         ",
	"                                     #######                     ######                           ##############        ",
	"                                     #######                      #####                            #############        ",
	"                                     ######                       ####                             ###   ######         ",
	"                                    #####                                                                  ####       # ",
	"                                    #####                                                                              #",
	"                                    ###                                                                      #        # ",
	"                                    ###                                                                             ##  ",
	"                                    ##                                                                                  ",
	"                                   ##                                                                                   ",
	"                                    ##                                                                                  ",
	"                                                                                                                        ",
	"                                                                                                                        ",
	"                                                                                                                        ",
	"                                       #                                                                                ",
	"                                      #                                #  ##########   ########################         ",
	"                                   #####                 ########################## #################################   ",
	"                  # ## #   #############              #############################################################     ",
	"        ## #########################             ##################################################################     ",
	"           ######################## #  #  ##     #################################################################      ",
	"    ##################################################################################################################  ",
	"########################################################################################################################",
}

// landAt samples the land mask at a latitude/longitude in degrees.
func landAt(lat, lon float64) bool {
	rows := len(worldLand)
	cols := len(worldLand[0])
	y := int((90 - lat) / 180 * float64(rows))
	x := int((lon + 180) / 360 * float64(cols))
	if y < 0 {
		y = 0
	}
	if y >= rows {
		y = rows - 1
	}
	if x < 0 {
		x = 0
	}
	if x >= cols {
		x = cols - 1
	}
	return worldLand[y][x] == '#'
}
